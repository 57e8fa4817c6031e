// Package mirror implements the user-triggered push/pull synchronization
// between the local collections and the account-scoped remote tables.
// Row schemas are declared explicitly here and validated strictly at this
// boundary; a malformed remote row fails the whole pull.
package mirror

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/fitflow-app/fitflow-server/internal/models"
)

// ExerciseRow mirrors one user-created exercise.
type ExerciseRow struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null;size:255" json:"name"`
	Category    string    `gorm:"not null;size:50" json:"category"`
	MuscleGroup string    `gorm:"size:255" json:"muscle_group"`
	Type        string    `gorm:"size:20" json:"type"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ExerciseRow) TableName() string { return "exercises" }

// TemplateRow mirrors one template; items are stored as a JSON blob.
type TemplateRow struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Items     datatypes.JSON `gorm:"type:jsonb" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (TemplateRow) TableName() string { return "workout_templates" }

// WorkoutRow mirrors one daily workout, keyed by (user_id, date_key) so a
// day can never duplicate.
type WorkoutRow struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_daily_workouts_user_date" json:"user_id"`
	DateKey   string         `gorm:"not null;size:10;uniqueIndex:idx_daily_workouts_user_date" json:"date_key"`
	Items     datatypes.JSON `gorm:"type:jsonb" json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (WorkoutRow) TableName() string { return "daily_workouts" }

// --- Encoding (local -> row) ---

func exerciseToRow(userID uuid.UUID, e models.Exercise) (ExerciseRow, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return ExerciseRow{}, fmt.Errorf("exercise %q has a non-uuid id %q: %w", e.Name, e.ID, err)
	}
	return ExerciseRow{
		ID:          id,
		UserID:      userID,
		Name:        e.Name,
		Category:    string(e.Category),
		MuscleGroup: e.MuscleGroup,
		Type:        string(e.Type),
		IsFavorite:  e.IsFavorite,
	}, nil
}

func templateToRow(userID uuid.UUID, t models.WorkoutTemplate) (TemplateRow, error) {
	id, err := uuid.Parse(t.ID)
	if err != nil {
		return TemplateRow{}, fmt.Errorf("template %q has a non-uuid id %q: %w", t.Name, t.ID, err)
	}
	items, err := json.Marshal(t.Items)
	if err != nil {
		return TemplateRow{}, fmt.Errorf("encode template %q items: %w", t.Name, err)
	}
	return TemplateRow{ID: id, UserID: userID, Name: t.Name, Items: items}, nil
}

func workoutToRow(userID uuid.UUID, w models.DailyWorkout) (WorkoutRow, error) {
	items, err := json.Marshal(w.Items)
	if err != nil {
		return WorkoutRow{}, fmt.Errorf("encode workout %s items: %w", w.Date, err)
	}
	return WorkoutRow{ID: uuid.New(), UserID: userID, DateKey: w.Date, Items: items}, nil
}

// --- Decoding (row -> local), strict ---

func rowToExercise(r ExerciseRow) (models.Exercise, error) {
	category := models.ExerciseCategory(r.Category)
	if !category.Valid() {
		return models.Exercise{}, fmt.Errorf("%w: exercise %s has unknown category %q", ErrMalformedRow, r.ID, r.Category)
	}
	if r.Name == "" {
		return models.Exercise{}, fmt.Errorf("%w: exercise %s has an empty name", ErrMalformedRow, r.ID)
	}
	return models.Exercise{
		ID:          r.ID.String(),
		Name:        r.Name,
		Category:    category,
		MuscleGroup: r.MuscleGroup,
		Type:        models.ExerciseType(r.Type),
		IsFavorite:  r.IsFavorite,
		Origin:      models.OriginUser,
	}, nil
}

func rowToTemplate(r TemplateRow) (models.WorkoutTemplate, error) {
	if r.Name == "" {
		return models.WorkoutTemplate{}, fmt.Errorf("%w: template %s has an empty name", ErrMalformedRow, r.ID)
	}
	var items []models.TemplateItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return models.WorkoutTemplate{}, fmt.Errorf("%w: template %s items: %v", ErrMalformedRow, r.ID, err)
		}
	}
	return models.WorkoutTemplate{ID: r.ID.String(), Name: r.Name, Items: items}, nil
}

func rowToWorkout(r WorkoutRow) (models.DailyWorkout, error) {
	if r.DateKey == "" {
		return models.DailyWorkout{}, fmt.Errorf("%w: workout %s has an empty date key", ErrMalformedRow, r.ID)
	}
	var items []models.WorkoutItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return models.DailyWorkout{}, fmt.Errorf("%w: workout %s items: %v", ErrMalformedRow, r.DateKey, err)
		}
	}
	return models.DailyWorkout{Date: r.DateKey, Items: items}, nil
}
