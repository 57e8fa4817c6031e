package workout

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return NewService(st)
}

func item(exerciseID string) models.WorkoutItem {
	return models.WorkoutItem{
		ID:         exerciseID + "-item",
		ExerciseID: exerciseID,
		Sets:       []models.WorkoutSet{{ID: exerciseID + "-set", Reps: 10}},
	}
}

func TestFirstRunSeedsCatalog(t *testing.T) {
	svc := newTestService(t)

	exercises := svc.Exercises()
	require.NotEmpty(t, exercises)
	for _, e := range exercises {
		assert.Equal(t, models.OriginSeed, e.Origin)
	}

	ex, ok := svc.ExerciseByID("legs-1")
	require.True(t, ok)
	assert.Equal(t, models.CategoryLegs, ex.Category)
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	dir := t.TempDir()
	st, err := store.New(dir)
	require.NoError(t, err)

	svc := NewService(st)
	created, err := svc.AddExercise(models.Exercise{Name: "Face Pull", Category: models.CategoryShoulders})
	require.NoError(t, err)
	require.NoError(t, svc.AssignWorkout("2024-03-01", []models.WorkoutItem{item(created.ID)}))

	st2, err := store.New(dir)
	require.NoError(t, err)
	svc2 := NewService(st2)

	got, ok := svc2.ExerciseByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Face Pull", got.Name)
	w, ok := svc2.WorkoutOn("2024-03-01")
	require.True(t, ok)
	assert.Len(t, w.Items, 1)
}

func TestAssignWorkoutConcatenatesInCallOrder(t *testing.T) {
	svc := newTestService(t)

	itemA := item("chest-1")
	itemB := item("legs-1")

	require.NoError(t, svc.AssignWorkout("2024-03-01", []models.WorkoutItem{itemA}))
	require.NoError(t, svc.AssignWorkout("2024-03-01", []models.WorkoutItem{itemB}))

	w, ok := svc.WorkoutOn("2024-03-01")
	require.True(t, ok)
	require.Len(t, w.Items, 2)
	assert.Equal(t, itemA.ID, w.Items[0].ID)
	assert.Equal(t, itemB.ID, w.Items[1].ID)

	// exactly one workout exists for the date
	count := 0
	for _, dw := range svc.Workouts() {
		if dw.Date == "2024-03-01" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUpdateDailyWorkoutReplacesByDate(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.AssignWorkout("2024-03-02", []models.WorkoutItem{item("chest-1"), item("back-1")}))
	require.NoError(t, svc.UpdateDailyWorkout(models.DailyWorkout{
		Date:  "2024-03-02",
		Items: []models.WorkoutItem{item("core-1")},
	}))

	w, ok := svc.WorkoutOn("2024-03-02")
	require.True(t, ok)
	require.Len(t, w.Items, 1)
	assert.Equal(t, "core-1", w.Items[0].ExerciseID)
}

func TestUpdateDailyWorkoutAppendsWhenDateUnknown(t *testing.T) {
	svc := newTestService(t)

	require.NoError(t, svc.UpdateDailyWorkout(models.DailyWorkout{Date: "2024-04-10"}))
	_, ok := svc.WorkoutOn("2024-04-10")
	assert.True(t, ok)
}

func TestDeleteExerciseDoesNotCascade(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.AddExercise(models.Exercise{Name: "Nordic Curl", Category: models.CategoryLegs})
	require.NoError(t, err)
	require.NoError(t, svc.AssignWorkout("2024-03-01", []models.WorkoutItem{item(created.ID)}))

	require.NoError(t, svc.DeleteExercise(created.ID))

	w, ok := svc.WorkoutOn("2024-03-01")
	require.True(t, ok)
	require.Len(t, w.Items, 1)
	assert.Equal(t, created.ID, w.Items[0].ExerciseID)
	assert.Equal(t, UnknownExerciseName, svc.ResolveExerciseName(created.ID))
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	svc := newTestService(t)

	before, ok := svc.ExerciseByID("back-1")
	require.True(t, ok)

	require.NoError(t, svc.ToggleFavorite("back-1"))
	mid, _ := svc.ExerciseByID("back-1")
	assert.Equal(t, !before.IsFavorite, mid.IsFavorite)

	require.NoError(t, svc.ToggleFavorite("back-1"))
	after, _ := svc.ExerciseByID("back-1")
	assert.Equal(t, before.IsFavorite, after.IsFavorite)
}

func TestAddExerciseRequiresName(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddExercise(models.Exercise{Name: "   "})
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestAddExerciseGeneratesIDAndUserOrigin(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.AddExercise(models.Exercise{
		ID:       "chest-1",
		Name:     "Zercher Squat",
		Category: models.CategoryLegs,
		Origin:   models.OriginSeed,
	})
	require.NoError(t, err)
	_, err = uuid.Parse(created.ID)
	assert.NoError(t, err, "caller-supplied id must be replaced with a generated one")
	assert.Equal(t, models.OriginUser, created.Origin)

	// the catalog entry the caller tried to collide with is untouched
	seeded, ok := svc.ExerciseByID("chest-1")
	require.True(t, ok)
	assert.Equal(t, models.OriginSeed, seeded.Origin)
}

func TestAddTemplateGeneratesID(t *testing.T) {
	svc := newTestService(t)

	tpl, err := svc.AddTemplate(models.WorkoutTemplate{ID: "my-template", Name: "Pull Day"})
	require.NoError(t, err)
	_, err = uuid.Parse(tpl.ID)
	assert.NoError(t, err, "caller-supplied id must be replaced with a generated one")
}

func TestUpdateExercisePreservesOrigin(t *testing.T) {
	svc := newTestService(t)

	ex, ok := svc.ExerciseByID("chest-1")
	require.True(t, ok)
	ex.Name = "Strict Push-Up"
	ex.Origin = models.OriginUser
	require.NoError(t, svc.UpdateExercise(ex))

	got, _ := svc.ExerciseByID("chest-1")
	assert.Equal(t, "Strict Push-Up", got.Name)
	assert.Equal(t, models.OriginSeed, got.Origin)
}

func TestTemplateCRUD(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.AddTemplate(models.WorkoutTemplate{Name: ""})
	assert.ErrorIs(t, err, ErrNameRequired)

	tpl, err := svc.AddTemplate(models.WorkoutTemplate{
		Name:  "Push Day",
		Items: []models.TemplateItem{{ExerciseID: "chest-1", DefaultSets: 4, DefaultReps: 8}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, tpl.ID)

	tpl.Name = "Push Day A"
	require.NoError(t, svc.UpdateTemplate(tpl))
	got, ok := svc.TemplateByID(tpl.ID)
	require.True(t, ok)
	assert.Equal(t, "Push Day A", got.Name)

	require.NoError(t, svc.DeleteTemplate(tpl.ID))
	assert.ErrorIs(t, svc.DeleteTemplate(tpl.ID), ErrTemplateNotFound)
}

func TestLocalDateKeyUsesWallClockDate(t *testing.T) {
	// 23:30 in UTC-5 is 04:30 next day UTC; the key must stay on the local day.
	loc := time.FixedZone("UTC-5", -5*60*60)
	late := time.Date(2024, 3, 1, 23, 30, 0, 0, loc)

	assert.Equal(t, "2024-03-01", LocalDateKey(late))
	assert.Equal(t, "2024-03-02", LocalDateKey(late.UTC()))
}

func TestTodayWorkoutReturnsPlaceholder(t *testing.T) {
	svc := newTestService(t)

	w := svc.TodayWorkout()
	assert.Equal(t, TodayKey(), w.Date)
	assert.Empty(t, w.Items)

	// placeholder is not persisted
	_, ok := svc.WorkoutOn(TodayKey())
	assert.False(t, ok)
}
