package mirror

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/store"
	"github.com/fitflow-app/fitflow-server/internal/workout"
)

// memoryRemote implements Remote in memory with the same keying rules as the
// Postgres tables: exercises/templates upsert by id, workouts by
// (user_id, date_key).
type memoryRemote struct {
	exercises map[uuid.UUID]ExerciseRow
	templates map[uuid.UUID]TemplateRow
	workouts  map[string]WorkoutRow // userID|dateKey

	failTemplates bool
}

func newMemoryRemote() *memoryRemote {
	return &memoryRemote{
		exercises: map[uuid.UUID]ExerciseRow{},
		templates: map[uuid.UUID]TemplateRow{},
		workouts:  map[string]WorkoutRow{},
	}
}

func (m *memoryRemote) UpsertExercises(rows []ExerciseRow) error {
	for _, r := range rows {
		m.exercises[r.ID] = r
	}
	return nil
}

func (m *memoryRemote) UpsertTemplates(rows []TemplateRow) error {
	if m.failTemplates {
		return errors.New("connection reset")
	}
	for _, r := range rows {
		m.templates[r.ID] = r
	}
	return nil
}

func (m *memoryRemote) UpsertWorkouts(rows []WorkoutRow) error {
	for _, r := range rows {
		key := r.UserID.String() + "|" + r.DateKey
		if existing, ok := m.workouts[key]; ok {
			existing.Items = r.Items
			m.workouts[key] = existing
			continue
		}
		m.workouts[key] = r
	}
	return nil
}

func (m *memoryRemote) FetchExercises(userID uuid.UUID) ([]ExerciseRow, error) {
	var out []ExerciseRow
	for _, r := range m.exercises {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRemote) FetchTemplates(userID uuid.UUID) ([]TemplateRow, error) {
	var out []TemplateRow
	for _, r := range m.templates {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRemote) FetchWorkouts(userID uuid.UUID) ([]WorkoutRow, error) {
	var out []WorkoutRow
	for _, r := range m.workouts {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestSync(t *testing.T) (*Service, *memoryRemote, *workout.Service) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	state := workout.NewService(st)
	remote := newMemoryRemote()
	return NewService(remote, state), remote, state
}

func TestPushRequiresAuthentication(t *testing.T) {
	svc, _, _ := newTestSync(t)

	_, err := svc.Push(uuid.Nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = svc.Pull(uuid.Nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestPushSkipsSeedRecords(t *testing.T) {
	svc, remote, state := newTestSync(t)
	userID := uuid.New()

	created, err := state.AddExercise(models.Exercise{Name: "Landmine Press", Category: models.CategoryShoulders})
	require.NoError(t, err)

	res, err := svc.Push(userID)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Exercises)
	require.Len(t, remote.exercises, 1)
	row := remote.exercises[uuid.MustParse(created.ID)]
	assert.Equal(t, "Landmine Press", row.Name)
	assert.Equal(t, userID, row.UserID)
}

func TestPushSkipsRecordsWithUnsyncableIDs(t *testing.T) {
	// Older data files can hold user records whose ids are not uuids. Such a
	// record must stay local without sinking the push for everything else.
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	goodID := uuid.NewString()
	require.NoError(t, st.Save(store.KeyExercises, []models.Exercise{
		{ID: "my-ex", Name: "Hand Edited", Category: models.CategoryCustom, Origin: models.OriginUser},
		{ID: goodID, Name: "Pallof Press", Category: models.CategoryCore, Origin: models.OriginUser},
	}))

	state := workout.NewService(st)
	remote := newMemoryRemote()
	svc := NewService(remote, state)
	userID := uuid.New()

	res, err := svc.Push(userID)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Exercises)
	require.Len(t, remote.exercises, 1)
	assert.Equal(t, "Pallof Press", remote.exercises[uuid.MustParse(goodID)].Name)
}

func TestPushThenPullRoundTrip(t *testing.T) {
	svc, _, state := newTestSync(t)
	userID := uuid.New()

	created, err := state.AddExercise(models.Exercise{
		Name:        "Trap Bar Deadlift",
		Category:    models.CategoryLegs,
		MuscleGroup: "Posterior Chain",
		Type:        models.TypeReps,
	})
	require.NoError(t, err)
	require.NoError(t, state.ToggleFavorite(created.ID))

	_, err = svc.Push(userID)
	require.NoError(t, err)

	// wipe local, then pull
	require.NoError(t, state.ReplaceCollections(nil, nil, nil))
	_, err = svc.Pull(userID)
	require.NoError(t, err)

	got, ok := state.ExerciseByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Trap Bar Deadlift", got.Name)
	assert.Equal(t, models.CategoryLegs, got.Category)
	assert.Equal(t, "Posterior Chain", got.MuscleGroup)
	assert.True(t, got.IsFavorite)

	// full seed catalog survives the pull
	seedSeen, ok := state.ExerciseByID("chest-1")
	require.True(t, ok)
	assert.Equal(t, models.OriginSeed, seedSeen.Origin)
}

func TestPushWorkoutsKeyedByDate(t *testing.T) {
	svc, remote, state := newTestSync(t)
	userID := uuid.New()

	itemA := models.WorkoutItem{ID: "a", ExerciseID: "legs-1", Sets: []models.WorkoutSet{{ID: "a1", Reps: 12}}}
	require.NoError(t, state.AssignWorkout("2024-03-01", []models.WorkoutItem{itemA}))

	_, err := svc.Push(userID)
	require.NoError(t, err)

	// a second push of the same day must not duplicate the row
	itemB := models.WorkoutItem{ID: "b", ExerciseID: "chest-1", Sets: []models.WorkoutSet{{ID: "b1", Reps: 10}}}
	require.NoError(t, state.AssignWorkout("2024-03-01", []models.WorkoutItem{itemB}))
	_, err = svc.Push(userID)
	require.NoError(t, err)

	require.Len(t, remote.workouts, 1)
}

func TestPullReplacesTemplatesAndWorkouts(t *testing.T) {
	svc, _, state := newTestSync(t)
	userID := uuid.New()

	// local-only template, never pushed
	_, err := state.AddTemplate(models.WorkoutTemplate{Name: "Local Only"})
	require.NoError(t, err)

	_, err = svc.Pull(userID)
	require.NoError(t, err)

	// pull is a destructive overwrite: the unsynced template is gone
	assert.Empty(t, state.Templates())
}

func TestPullRejectsMalformedRowWithoutLocalChange(t *testing.T) {
	svc, remote, state := newTestSync(t)
	userID := uuid.New()

	_, err := state.AddTemplate(models.WorkoutTemplate{Name: "Keep Me"})
	require.NoError(t, err)

	remote.exercises[uuid.New()] = ExerciseRow{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     "Bad Row",
		Category: "not-a-category",
	}

	_, err = svc.Pull(userID)
	require.ErrorIs(t, err, ErrMalformedRow)

	// nothing was committed locally
	require.Len(t, state.Templates(), 1)
	assert.Equal(t, "Keep Me", state.Templates()[0].Name)
}

func TestPushPartialFailureKeepsEarlierCollections(t *testing.T) {
	svc, remote, state := newTestSync(t)
	userID := uuid.New()

	_, err := state.AddExercise(models.Exercise{Name: "Good Morning", Category: models.CategoryLegs})
	require.NoError(t, err)
	_, err = state.AddTemplate(models.WorkoutTemplate{Name: "Doomed"})
	require.NoError(t, err)

	remote.failTemplates = true
	_, err = svc.Push(userID)
	require.Error(t, err)

	// exercises committed before the failure stay committed
	assert.Len(t, remote.exercises, 1)
	assert.Empty(t, remote.templates)
}

func TestSyncBusyFlagRejectsReentrantTrigger(t *testing.T) {
	svc, _, _ := newTestSync(t)

	svc.busy.Store(true)
	_, err := svc.Push(uuid.New())
	assert.ErrorIs(t, err, ErrSyncInProgress)
	_, err = svc.Pull(uuid.New())
	assert.ErrorIs(t, err, ErrSyncInProgress)
}
