package mirror

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/fitflow-app/fitflow-server/internal/catalog"
	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/workout"
)

var (
	ErrNotAuthenticated = errors.New("not logged in")
	ErrSyncInProgress   = errors.New("a sync operation is already running")
	ErrMalformedRow     = errors.New("malformed remote row")
)

// Service runs push and pull. Operations are single-attempt, user-triggered,
// and guarded by a busy flag so a second trigger fails fast while one is
// outstanding. A failed push leaves already-pushed collections committed
// remotely; there is no compensating rollback.
type Service struct {
	remote Remote
	state  *workout.Service
	busy   atomic.Bool
}

func NewService(remote Remote, state *workout.Service) *Service {
	return &Service{remote: remote, state: state}
}

// Result counts the records a sync operation touched per collection.
type Result struct {
	Exercises int `json:"exercises"`
	Templates int `json:"templates"`
	Workouts  int `json:"workouts"`
}

// Push uploads the local collections, overwriting remote state for the
// pushed ids. Exercises and templates are filtered to user-created records;
// the seed catalog never leaves the device. Workouts are pushed unfiltered,
// keyed by date. A record the mirror cannot encode is skipped, not fatal:
// push filters to eligible rows rather than failing on ineligible ones.
func (s *Service) Push(userID uuid.UUID) (Result, error) {
	if userID == uuid.Nil {
		return Result{}, ErrNotAuthenticated
	}
	if !s.busy.CompareAndSwap(false, true) {
		return Result{}, ErrSyncInProgress
	}
	defer s.busy.Store(false)

	var res Result

	var exRows []ExerciseRow
	for _, e := range s.state.Exercises() {
		if e.Origin != models.OriginUser {
			continue
		}
		row, err := exerciseToRow(userID, e)
		if err != nil {
			// records from older data files may carry ids the mirror
			// cannot key on; they stay local instead of sinking the push
			slog.Warn("skipping unsyncable exercise", "op", "push", "error", err)
			continue
		}
		exRows = append(exRows, row)
	}
	if err := s.remote.UpsertExercises(exRows); err != nil {
		return res, fmt.Errorf("push exercises: %w", err)
	}
	res.Exercises = len(exRows)

	var tplRows []TemplateRow
	for _, t := range s.state.Templates() {
		row, err := templateToRow(userID, t)
		if err != nil {
			slog.Warn("skipping unsyncable template", "op", "push", "error", err)
			continue
		}
		tplRows = append(tplRows, row)
	}
	if err := s.remote.UpsertTemplates(tplRows); err != nil {
		return res, fmt.Errorf("push templates: %w", err)
	}
	res.Templates = len(tplRows)

	var wRows []WorkoutRow
	for _, w := range s.state.Workouts() {
		row, err := workoutToRow(userID, w)
		if err != nil {
			slog.Warn("skipping unsyncable workout", "op", "push", "error", err)
			continue
		}
		wRows = append(wRows, row)
	}
	if err := s.remote.UpsertWorkouts(wRows); err != nil {
		return res, fmt.Errorf("push workouts: %w", err)
	}
	res.Workouts = len(wRows)

	slog.Info("push complete", "user_id", userID,
		"exercises", res.Exercises, "templates", res.Templates, "workouts", res.Workouts)
	return res, nil
}

// Pull downloads the account's remote rows and overwrites the local
// collections. Exercises merge over the seed catalog base: a remote row
// sharing a seed id overrides that entry, everything else appends. Templates
// and workouts are exactly the remote set. Any malformed row fails the whole
// pull with no local change.
func (s *Service) Pull(userID uuid.UUID) (Result, error) {
	if userID == uuid.Nil {
		return Result{}, ErrNotAuthenticated
	}
	if !s.busy.CompareAndSwap(false, true) {
		return Result{}, ErrSyncInProgress
	}
	defer s.busy.Store(false)

	exRows, err := s.remote.FetchExercises(userID)
	if err != nil {
		return Result{}, fmt.Errorf("pull exercises: %w", err)
	}
	tplRows, err := s.remote.FetchTemplates(userID)
	if err != nil {
		return Result{}, fmt.Errorf("pull templates: %w", err)
	}
	wRows, err := s.remote.FetchWorkouts(userID)
	if err != nil {
		return Result{}, fmt.Errorf("pull workouts: %w", err)
	}

	// Decode and validate everything before touching local state.
	remoteExercises := make([]models.Exercise, 0, len(exRows))
	for _, r := range exRows {
		e, err := rowToExercise(r)
		if err != nil {
			return Result{}, err
		}
		remoteExercises = append(remoteExercises, e)
	}
	templates := make([]models.WorkoutTemplate, 0, len(tplRows))
	for _, r := range tplRows {
		t, err := rowToTemplate(r)
		if err != nil {
			return Result{}, err
		}
		templates = append(templates, t)
	}
	workouts := make([]models.DailyWorkout, 0, len(wRows))
	for _, r := range wRows {
		w, err := rowToWorkout(r)
		if err != nil {
			return Result{}, err
		}
		workouts = append(workouts, w)
	}

	exercises := mergeOverSeed(remoteExercises)

	if err := s.state.ReplaceCollections(exercises, templates, workouts); err != nil {
		return Result{}, fmt.Errorf("persist pulled data: %w", err)
	}

	res := Result{Exercises: len(remoteExercises), Templates: len(templates), Workouts: len(workouts)}
	slog.Info("pull complete", "user_id", userID,
		"exercises", res.Exercises, "templates", res.Templates, "workouts", res.Workouts)
	return res, nil
}

// mergeOverSeed lays remote exercises over the seed catalog: seed entries
// survive unless a remote entry shares their id, remote-only entries append
// in fetch order.
func mergeOverSeed(remote []models.Exercise) []models.Exercise {
	base := catalog.Seed()
	byID := make(map[string]int, len(base))
	for i, e := range base {
		byID[e.ID] = i
	}

	out := base
	for _, e := range remote {
		if i, ok := byID[e.ID]; ok {
			out[i] = e
			continue
		}
		out = append(out, e)
	}
	return out
}
