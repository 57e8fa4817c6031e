package models

// Suggestion is one line of an AI-drafted plan, exactly as the provider
// returns it. Sets/reps may be absent and default to 3x10 when folded into a
// template.
type Suggestion struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	MuscleGroup   string `json:"muscleGroup"`
	SuggestedSets int    `json:"suggestedSets"`
	SuggestedReps int    `json:"suggestedReps"`
}
