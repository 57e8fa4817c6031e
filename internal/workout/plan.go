package workout

import (
	"sort"

	"github.com/google/uuid"

	"github.com/fitflow-app/fitflow-server/internal/models"
)

// newSets builds count fresh sets at reps each, completed=false.
func newSets(count, reps int) []models.WorkoutSet {
	if count < 1 {
		count = defaultSets
	}
	if reps < 1 {
		reps = defaultReps
	}
	sets := make([]models.WorkoutSet, count)
	for i := range sets {
		sets[i] = models.WorkoutSet{ID: uuid.NewString(), Reps: reps}
	}
	return sets
}

// MaterializeExercise expands one exercise into an assignable item. Zero
// sets/reps fall back to the stored preference, then to 3x10.
func (s *Service) MaterializeExercise(exerciseID string, sets, reps int) (models.WorkoutItem, error) {
	if _, ok := s.ExerciseByID(exerciseID); !ok {
		return models.WorkoutItem{}, ErrExerciseNotFound
	}

	s.mu.Lock()
	pref, hasPref := s.preferences[exerciseID]
	s.mu.Unlock()
	if sets < 1 && hasPref {
		sets = pref.DefaultSets
	}
	if reps < 1 && hasPref {
		reps = pref.DefaultReps
	}

	return models.WorkoutItem{
		ID:         uuid.NewString(),
		ExerciseID: exerciseID,
		Sets:       newSets(sets, reps),
	}, nil
}

// MaterializeTemplate expands every template item into a fresh WorkoutItem.
// Each gets a new id, each set a new id, reps from the template defaults.
func (s *Service) MaterializeTemplate(templateID string) ([]models.WorkoutItem, error) {
	tpl, ok := s.TemplateByID(templateID)
	if !ok {
		return nil, ErrTemplateNotFound
	}

	items := make([]models.WorkoutItem, 0, len(tpl.Items))
	for _, ti := range tpl.Items {
		items = append(items, models.WorkoutItem{
			ID:         uuid.NewString(),
			ExerciseID: ti.ExerciseID,
			Sets:       newSets(ti.DefaultSets, ti.DefaultReps),
		})
	}
	return items, nil
}

// AddExerciseToDay materializes one exercise onto a date and records the
// chosen sets/reps as that exercise's preference, like the plan dialog did.
func (s *Service) AddExerciseToDay(date, exerciseID string, sets, reps int) (models.WorkoutItem, error) {
	item, err := s.MaterializeExercise(exerciseID, sets, reps)
	if err != nil {
		return models.WorkoutItem{}, err
	}
	if err := s.UpdatePreference(exerciseID, len(item.Sets), item.Sets[0].Reps); err != nil {
		return models.WorkoutItem{}, err
	}
	if err := s.AssignWorkout(date, []models.WorkoutItem{item}); err != nil {
		return models.WorkoutItem{}, err
	}
	return item, nil
}

// AddTemplateToDay materializes a template onto a date.
func (s *Service) AddTemplateToDay(date, templateID string) ([]models.WorkoutItem, error) {
	items, err := s.MaterializeTemplate(templateID)
	if err != nil {
		return nil, err
	}
	if err := s.AssignWorkout(date, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UsageFrequency counts workout items per exercise id across all days.
// Recomputed on read, never stored.
func (s *Service) UsageFrequency() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	freq := make(map[string]int)
	for _, w := range s.workouts {
		for _, item := range w.Items {
			freq[item.ExerciseID]++
		}
	}
	return freq
}

// CommonExercises returns the non-custom library ordered by usage frequency
// descending. Ties keep library order.
func (s *Service) CommonExercises() []models.Exercise {
	freq := s.UsageFrequency()

	s.mu.Lock()
	out := make([]models.Exercise, 0, len(s.exercises))
	for _, e := range s.exercises {
		if e.Category != models.CategoryCustom {
			out = append(out, e)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return freq[out[i].ID] > freq[out[j].ID]
	})
	return out
}

// FavoriteExercises returns the favorited subset of the library.
func (s *Service) FavoriteExercises() []models.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Exercise
	for _, e := range s.exercises {
		if e.IsFavorite {
			out = append(out, e)
		}
	}
	return out
}
