// Package workout owns the in-memory application state and is its only write
// surface. Every mutation runs to completion against the snapshot and is
// followed by a local store write of the affected collection.
package workout

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/fitflow-app/fitflow-server/internal/catalog"
	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/store"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrItemNotFound     = errors.New("workout item not found")
	ErrSetNotFound      = errors.New("workout set not found")
	ErrInvalidCategory  = errors.New("invalid exercise category")
	ErrInvalidTheme     = errors.New("theme must be light or dark")
	ErrInvalidProvider  = errors.New("unknown ai provider")
)

// UnknownExerciseName is the placeholder shown for items whose exercise
// reference no longer resolves. Deleting an exercise does not cascade.
const UnknownExerciseName = "Unknown exercise"

const (
	defaultSets = 3
	defaultReps = 10
)

// Service holds every top-level collection and persists each one after a
// successful mutation. Handlers may run concurrently, so a single mutex
// serializes mutations the way the original's event loop did.
type Service struct {
	mu sync.Mutex
	st *store.Store

	exercises   []models.Exercise
	workouts    []models.DailyWorkout
	templates   []models.WorkoutTemplate
	preferences models.ExercisePreferences
	aiSettings  models.AiSettings
	theme       string
}

// NewService loads each collection from the store, substituting defaults for
// anything absent or malformed. First run gets the seed catalog.
func NewService(st *store.Store) *Service {
	s := &Service{
		st:          st,
		workouts:    []models.DailyWorkout{},
		templates:   []models.WorkoutTemplate{},
		preferences: models.ExercisePreferences{},
		theme:       "light",
	}

	if !st.Load(store.KeyExercises, &s.exercises) {
		s.exercises = catalog.Seed()
	}
	st.Load(store.KeyWorkouts, &s.workouts)
	st.Load(store.KeyTemplates, &s.templates)
	st.Load(store.KeyPreferences, &s.preferences)
	st.Load(store.KeyAiSettings, &s.aiSettings)
	st.Load(store.KeyTheme, &s.theme)

	return s
}

// --- Exercises ---

func (s *Service) Exercises() []models.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Exercise, len(s.exercises))
	copy(out, s.exercises)
	return out
}

func (s *Service) ExerciseByID(id string) (models.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.exercises {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exercise{}, false
}

// ResolveExerciseName returns the exercise name for id, or the unknown
// placeholder when the reference is dangling.
func (s *Service) ResolveExerciseName(id string) string {
	if e, ok := s.ExerciseByID(id); ok {
		return e.Name
	}
	return UnknownExerciseName
}

// AddExercise inserts a user-created exercise. The id is always generated
// here and origin is always USER regardless of what the caller sent; a
// caller-supplied id could collide with catalog ids or carry a shape the
// mirror cannot key on.
func (s *Service) AddExercise(ex models.Exercise) (models.Exercise, error) {
	if strings.TrimSpace(ex.Name) == "" {
		return models.Exercise{}, ErrNameRequired
	}
	if ex.Category == "" {
		ex.Category = models.CategoryCustom
	}
	if !ex.Category.Valid() {
		return models.Exercise{}, ErrInvalidCategory
	}
	if ex.Type == "" {
		ex.Type = models.TypeReps
	}
	ex.ID = uuid.NewString()
	ex.Origin = models.OriginUser

	s.mu.Lock()
	defer s.mu.Unlock()
	s.exercises = append(s.exercises, ex)
	return ex, s.st.Save(store.KeyExercises, s.exercises)
}

func (s *Service) UpdateExercise(ex models.Exercise) error {
	if strings.TrimSpace(ex.Name) == "" {
		return ErrNameRequired
	}
	if !ex.Category.Valid() {
		return ErrInvalidCategory
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.exercises {
		if e.ID == ex.ID {
			// origin is set at creation time and never changes
			ex.Origin = e.Origin
			s.exercises[i] = ex
			return s.st.Save(store.KeyExercises, s.exercises)
		}
	}
	return ErrExerciseNotFound
}

// DeleteExercise removes the exercise only. Workout items referencing the id
// keep it and resolve to the unknown placeholder.
func (s *Service) DeleteExercise(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.exercises {
		if e.ID == id {
			s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
			return s.st.Save(store.KeyExercises, s.exercises)
		}
	}
	return ErrExerciseNotFound
}

func (s *Service) ToggleFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.exercises {
		if s.exercises[i].ID == id {
			s.exercises[i].IsFavorite = !s.exercises[i].IsFavorite
			return s.st.Save(store.KeyExercises, s.exercises)
		}
	}
	return ErrExerciseNotFound
}

// --- Templates ---

func (s *Service) Templates() []models.WorkoutTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

func (s *Service) TemplateByID(id string) (models.WorkoutTemplate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.WorkoutTemplate{}, false
}

// AddTemplate inserts a template under a generated id, ignoring any id the
// caller sent.
func (s *Service) AddTemplate(t models.WorkoutTemplate) (models.WorkoutTemplate, error) {
	if strings.TrimSpace(t.Name) == "" {
		return models.WorkoutTemplate{}, ErrNameRequired
	}
	t.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append(s.templates, t)
	return t, s.st.Save(store.KeyTemplates, s.templates)
}

func (s *Service) UpdateTemplate(t models.WorkoutTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.templates {
		if existing.ID == t.ID {
			s.templates[i] = t
			return s.st.Save(store.KeyTemplates, s.templates)
		}
	}
	return ErrTemplateNotFound
}

func (s *Service) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.templates {
		if t.ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			return s.st.Save(store.KeyTemplates, s.templates)
		}
	}
	return ErrTemplateNotFound
}

// --- Workouts ---

func (s *Service) Workouts() []models.DailyWorkout {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.DailyWorkout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// WorkoutOn looks up a workout by exact date-key equality.
func (s *Service) WorkoutOn(date string) (models.DailyWorkout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.workouts {
		if w.Date == date {
			return w, true
		}
	}
	return models.DailyWorkout{}, false
}

// TodayWorkout returns the workout keyed to the local calendar date, or an
// empty placeholder for that date if none exists. The placeholder is not
// persisted.
func (s *Service) TodayWorkout() models.DailyWorkout {
	today := TodayKey()
	if w, ok := s.WorkoutOn(today); ok {
		return w
	}
	return models.DailyWorkout{Date: today, Items: []models.WorkoutItem{}}
}

// UpdateDailyWorkout replaces the workout whose date matches, or appends one
// if no match exists.
func (s *Service) UpdateDailyWorkout(w models.DailyWorkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.workouts {
		if existing.Date == w.Date {
			s.workouts[i] = w
			return s.st.Save(store.KeyWorkouts, s.workouts)
		}
	}
	s.workouts = append(s.workouts, w)
	return s.st.Save(store.KeyWorkouts, s.workouts)
}

// AssignWorkout upserts by date, concatenating items onto an existing day
// rather than replacing them.
func (s *Service) AssignWorkout(date string, items []models.WorkoutItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.workouts {
		if existing.Date == date {
			s.workouts[i].Items = append(s.workouts[i].Items, items...)
			return s.st.Save(store.KeyWorkouts, s.workouts)
		}
	}
	s.workouts = append(s.workouts, models.DailyWorkout{Date: date, Items: items})
	return s.st.Save(store.KeyWorkouts, s.workouts)
}

// --- Preferences ---

func (s *Service) Preferences() models.ExercisePreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(models.ExercisePreferences, len(s.preferences))
	for k, v := range s.preferences {
		out[k] = v
	}
	return out
}

func (s *Service) UpdatePreference(exerciseID string, sets, reps int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preferences[exerciseID] = models.Preference{DefaultSets: sets, DefaultReps: reps}
	return s.st.Save(store.KeyPreferences, s.preferences)
}

// --- Sync boundary ---

// ReplaceCollections overwrites the synced collections after a remote pull
// and persists all three snapshots. AiSettings and theme are untouched; they
// are local-only.
func (s *Service) ReplaceCollections(exercises []models.Exercise, templates []models.WorkoutTemplate, workouts []models.DailyWorkout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exercises = exercises
	s.templates = templates
	s.workouts = workouts

	if err := s.st.Save(store.KeyExercises, s.exercises); err != nil {
		return err
	}
	if err := s.st.Save(store.KeyTemplates, s.templates); err != nil {
		return err
	}
	return s.st.Save(store.KeyWorkouts, s.workouts)
}
