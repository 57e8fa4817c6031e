package mirror

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Remote is the account-scoped table set push and pull run against.
type Remote interface {
	UpsertExercises(rows []ExerciseRow) error
	UpsertTemplates(rows []TemplateRow) error
	UpsertWorkouts(rows []WorkoutRow) error
	FetchExercises(userID uuid.UUID) ([]ExerciseRow, error)
	FetchTemplates(userID uuid.UUID) ([]TemplateRow, error)
	FetchWorkouts(userID uuid.UUID) ([]WorkoutRow, error)
}

// GormRemote backs Remote with the Postgres tables.
type GormRemote struct {
	db *gorm.DB
}

func NewGormRemote(db *gorm.DB) *GormRemote {
	return &GormRemote{db: db}
}

// Models lists the tables for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&ExerciseRow{}, &TemplateRow{}, &WorkoutRow{}}
}

// UpsertExercises overwrites remote rows for the pushed ids.
func (r *GormRemote) UpsertExercises(rows []ExerciseRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rows).Error
}

func (r *GormRemote) UpsertTemplates(rows []TemplateRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rows).Error
}

// UpsertWorkouts conflicts on (user_id, date_key) rather than id, so pushing
// the same day twice never duplicates a row.
func (r *GormRemote) UpsertWorkouts(rows []WorkoutRow) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&rows).Error
}

func (r *GormRemote) FetchExercises(userID uuid.UUID) ([]ExerciseRow, error) {
	var rows []ExerciseRow
	err := r.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *GormRemote) FetchTemplates(userID uuid.UUID) ([]TemplateRow, error) {
	var rows []TemplateRow
	err := r.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *GormRemote) FetchWorkouts(userID uuid.UUID) ([]WorkoutRow, error) {
	var rows []WorkoutRow
	err := r.db.Where("user_id = ?", userID).Order("date_key").Find(&rows).Error
	return rows, err
}
