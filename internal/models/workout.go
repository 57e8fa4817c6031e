package models

// ExerciseCategory is the closed set of library categories. Custom is the
// bucket for user- and AI-created movements.
type ExerciseCategory string

const (
	CategoryChest     ExerciseCategory = "chest"
	CategoryBack      ExerciseCategory = "back"
	CategoryLegs      ExerciseCategory = "legs"
	CategoryCore      ExerciseCategory = "core"
	CategoryArms      ExerciseCategory = "arms"
	CategoryShoulders ExerciseCategory = "shoulders"
	CategoryCardio    ExerciseCategory = "cardio"
	CategoryFullBody  ExerciseCategory = "full_body"
	CategoryCustom    ExerciseCategory = "custom"
)

// Categories lists every valid category.
var Categories = []ExerciseCategory{
	CategoryChest, CategoryBack, CategoryLegs, CategoryCore, CategoryArms,
	CategoryShoulders, CategoryCardio, CategoryFullBody, CategoryCustom,
}

func (c ExerciseCategory) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// ExerciseType distinguishes rep-counted movements from timed ones.
type ExerciseType string

const (
	TypeReps     ExerciseType = "REPS"
	TypeDuration ExerciseType = "DURATION"
)

// Origin marks whether a record shipped with the app or was created by a
// user. Only user records are eligible for remote push; seed records keep
// their short mnemonic ids ("chest-1") and never leave the device.
type Origin string

const (
	OriginSeed Origin = "SEED"
	OriginUser Origin = "USER"
)

// Exercise is a library entry describing a single movement.
type Exercise struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    ExerciseCategory `json:"category"`
	MuscleGroup string           `json:"muscleGroup,omitempty"`
	Type        ExerciseType     `json:"type,omitempty"`
	IsFavorite  bool             `json:"isFavorite"`
	Origin      Origin           `json:"origin"`
}

// WorkoutSet is one tracked set within a workout item.
type WorkoutSet struct {
	ID        string `json:"id"`
	Reps      int    `json:"reps"`
	Completed bool   `json:"completed"`
}

// WorkoutItem references an exercise by id; it does not own the exercise.
// A dangling ExerciseID is rendered as an unknown placeholder, never an error.
type WorkoutItem struct {
	ID         string       `json:"id"`
	ExerciseID string       `json:"exerciseId"`
	Sets       []WorkoutSet `json:"sets"`
	Notes      string       `json:"notes,omitempty"`
}

// DailyWorkout is the date-bound instance of assigned exercises.
// Date is a local-calendar "YYYY-MM-DD" key, unique per day.
type DailyWorkout struct {
	Date  string        `json:"date"`
	Items []WorkoutItem `json:"items"`
}

// TemplateItem is one line of a reusable template.
type TemplateItem struct {
	ExerciseID  string `json:"exerciseId"`
	DefaultSets int    `json:"defaultSets"`
	DefaultReps int    `json:"defaultReps"`
}

// WorkoutTemplate is a reusable, named exercise list with set/rep targets.
type WorkoutTemplate struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []TemplateItem `json:"items"`
}

// Preference is the last-used sets/reps configuration for one exercise.
type Preference struct {
	DefaultSets int `json:"defaultSets"`
	DefaultReps int `json:"defaultReps"`
}

// ExercisePreferences maps exercise id to its last-used configuration.
type ExercisePreferences map[string]Preference

// AiProvider selects a generative backend for workout drafting.
type AiProvider string

const (
	ProviderOpenAI      AiProvider = "openai"
	ProviderDeepSeek    AiProvider = "deepseek"
	ProviderSiliconFlow AiProvider = "siliconflow"
	ProviderCustom      AiProvider = "custom"
)

// AiSettings is local-only configuration for the draft generator.
// It is never pushed to the remote mirror.
type AiSettings struct {
	Provider  AiProvider `json:"provider"`
	APIKey    string     `json:"apiKey"`
	BaseURL   string     `json:"baseUrl,omitempty"`
	ModelName string     `json:"modelName,omitempty"`
}
