package dto

type AssignExerciseRequest struct {
	ExerciseID string `json:"exerciseId"`
	DateKey    string `json:"dateKey"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
}

type AssignTemplateRequest struct {
	TemplateID string `json:"templateId"`
	DateKey    string `json:"dateKey"`
}

type UpdateRepsRequest struct {
	Reps int `json:"reps"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

type PreferenceRequest struct {
	Sets int `json:"sets"`
	Reps int `json:"reps"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type DraftRequest struct {
	Prompt string `json:"prompt"`
	Name   string `json:"name"`
}
