// Package catalog holds the fixed exercise library shipped with the app.
// Seed entries use short mnemonic ids and are never pushed to the remote
// mirror; on pull they act as the base set that remote rows merge over.
package catalog

import "github.com/fitflow-app/fitflow-server/internal/models"

var seed = []models.Exercise{
	{ID: "chest-1", Name: "Push-Up", Category: models.CategoryChest, MuscleGroup: "Chest / Triceps / Front Delts", Type: models.TypeReps},
	{ID: "chest-2", Name: "Incline Push-Up", Category: models.CategoryChest, MuscleGroup: "Chest / Triceps / Front Delts", Type: models.TypeReps},
	{ID: "chest-3", Name: "Decline Push-Up", Category: models.CategoryChest, MuscleGroup: "Upper Chest / Triceps", Type: models.TypeReps},
	{ID: "chest-4", Name: "Diamond Push-Up", Category: models.CategoryChest, MuscleGroup: "Inner Chest / Triceps", Type: models.TypeReps},
	{ID: "chest-5", Name: "Dumbbell Bench Press", Category: models.CategoryChest, MuscleGroup: "Chest / Triceps", Type: models.TypeReps},
	{ID: "chest-6", Name: "Dumbbell Fly", Category: models.CategoryChest, MuscleGroup: "Chest", Type: models.TypeReps},

	{ID: "back-1", Name: "Pull-Up", Category: models.CategoryBack, MuscleGroup: "Lats / Biceps / Forearms", Type: models.TypeReps},
	{ID: "back-2", Name: "Chin-Up", Category: models.CategoryBack, MuscleGroup: "Lats / Biceps", Type: models.TypeReps},
	{ID: "back-3", Name: "Inverted Row", Category: models.CategoryBack, MuscleGroup: "Lats / Rhomboids / Biceps", Type: models.TypeReps},
	{ID: "back-4", Name: "One-Arm Dumbbell Row", Category: models.CategoryBack, MuscleGroup: "Lats / Rhomboids", Type: models.TypeReps},
	{ID: "back-5", Name: "Superman Hold", Category: models.CategoryBack, MuscleGroup: "Erectors / Glutes", Type: models.TypeDuration},

	{ID: "legs-1", Name: "Bodyweight Squat", Category: models.CategoryLegs, MuscleGroup: "Quads / Glutes / Hamstrings", Type: models.TypeReps},
	{ID: "legs-2", Name: "Bulgarian Split Squat", Category: models.CategoryLegs, MuscleGroup: "Quads / Glutes", Type: models.TypeReps},
	{ID: "legs-3", Name: "Walking Lunge", Category: models.CategoryLegs, MuscleGroup: "Quads / Glutes / Hamstrings", Type: models.TypeReps},
	{ID: "legs-4", Name: "Glute Bridge", Category: models.CategoryLegs, MuscleGroup: "Glutes / Hamstrings", Type: models.TypeReps},
	{ID: "legs-5", Name: "Calf Raise", Category: models.CategoryLegs, MuscleGroup: "Calves", Type: models.TypeReps},
	{ID: "legs-6", Name: "Wall Sit", Category: models.CategoryLegs, MuscleGroup: "Quads", Type: models.TypeDuration},
	{ID: "legs-7", Name: "Pistol Squat", Category: models.CategoryLegs, MuscleGroup: "Quads / Glutes / Balance", Type: models.TypeReps},

	{ID: "core-1", Name: "Plank", Category: models.CategoryCore, MuscleGroup: "Abs / Obliques", Type: models.TypeDuration},
	{ID: "core-2", Name: "Side Plank", Category: models.CategoryCore, MuscleGroup: "Obliques", Type: models.TypeDuration},
	{ID: "core-3", Name: "Hanging Knee Raise", Category: models.CategoryCore, MuscleGroup: "Abs / Hip Flexors", Type: models.TypeReps},
	{ID: "core-4", Name: "Lying Leg Raise", Category: models.CategoryCore, MuscleGroup: "Lower Abs", Type: models.TypeReps},
	{ID: "core-5", Name: "Crunch", Category: models.CategoryCore, MuscleGroup: "Abs", Type: models.TypeReps},
	{ID: "core-6", Name: "Russian Twist", Category: models.CategoryCore, MuscleGroup: "Obliques", Type: models.TypeReps},

	{ID: "arms-1", Name: "Dumbbell Curl", Category: models.CategoryArms, MuscleGroup: "Biceps", Type: models.TypeReps},
	{ID: "arms-2", Name: "Hammer Curl", Category: models.CategoryArms, MuscleGroup: "Biceps / Forearms", Type: models.TypeReps},
	{ID: "arms-3", Name: "Bench Dip", Category: models.CategoryArms, MuscleGroup: "Triceps", Type: models.TypeReps},
	{ID: "arms-4", Name: "Overhead Triceps Extension", Category: models.CategoryArms, MuscleGroup: "Triceps", Type: models.TypeReps},

	{ID: "shoulders-1", Name: "Pike Push-Up", Category: models.CategoryShoulders, MuscleGroup: "Delts / Triceps / Traps", Type: models.TypeReps},
	{ID: "shoulders-2", Name: "Dumbbell Shoulder Press", Category: models.CategoryShoulders, MuscleGroup: "Delts / Triceps", Type: models.TypeReps},
	{ID: "shoulders-3", Name: "Lateral Raise", Category: models.CategoryShoulders, MuscleGroup: "Side Delts", Type: models.TypeReps},
	{ID: "shoulders-4", Name: "Wall Handstand Hold", Category: models.CategoryShoulders, MuscleGroup: "Delts / Traps / Core", Type: models.TypeDuration},

	{ID: "cardio-1", Name: "Jumping Jacks", Category: models.CategoryCardio, MuscleGroup: "Full Body", Type: models.TypeDuration},
	{ID: "cardio-2", Name: "High Knees", Category: models.CategoryCardio, MuscleGroup: "Legs / Core", Type: models.TypeDuration},
	{ID: "cardio-3", Name: "Mountain Climbers", Category: models.CategoryCardio, MuscleGroup: "Core / Shoulders", Type: models.TypeDuration},
	{ID: "cardio-4", Name: "Jump Rope", Category: models.CategoryCardio, MuscleGroup: "Calves / Full Body", Type: models.TypeDuration},

	{ID: "fullbody-1", Name: "Burpee", Category: models.CategoryFullBody, MuscleGroup: "Full Body", Type: models.TypeReps},
	{ID: "fullbody-2", Name: "Bear Crawl", Category: models.CategoryFullBody, MuscleGroup: "Full Body", Type: models.TypeDuration},
	{ID: "fullbody-3", Name: "Turkish Get-Up", Category: models.CategoryFullBody, MuscleGroup: "Full Body / Core", Type: models.TypeReps},
}

// Seed returns a fresh copy of the catalog with the seed origin applied.
// Callers own the returned slice.
func Seed() []models.Exercise {
	out := make([]models.Exercise, len(seed))
	copy(out, seed)
	for i := range out {
		out[i].Origin = models.OriginSeed
	}
	return out
}

// IsSeedID reports whether id belongs to the shipped catalog.
func IsSeedID(id string) bool {
	for _, e := range seed {
		if e.ID == id {
			return true
		}
	}
	return false
}
