package workout

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/store"
)

// CreateTemplateFromSuggestions folds an AI draft into the library: each
// suggestion reuses an existing exercise by exact name match or creates a new
// one, then a single template mirrors the suggestions. Called only after the
// whole draft parsed cleanly; a failed draft creates nothing.
func (s *Service) CreateTemplateFromSuggestions(name string, suggestions []models.Suggestion) (models.WorkoutTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return models.WorkoutTemplate{}, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byName := make(map[string]string, len(s.exercises))
	for _, e := range s.exercises {
		byName[e.Name] = e.ID
	}

	var added bool
	items := make([]models.TemplateItem, 0, len(suggestions))
	for _, sug := range suggestions {
		exName := strings.TrimSpace(sug.Name)
		if exName == "" {
			continue
		}

		id, ok := byName[exName]
		if !ok {
			category := models.ExerciseCategory(sug.Category)
			if !category.Valid() {
				category = models.CategoryCustom
			}
			ex := models.Exercise{
				ID:          uuid.NewString(),
				Name:        exName,
				Category:    category,
				MuscleGroup: sug.MuscleGroup,
				Type:        models.TypeReps,
				Origin:      models.OriginUser,
			}
			s.exercises = append(s.exercises, ex)
			byName[exName] = ex.ID
			id = ex.ID
			added = true
		}

		sets, reps := sug.SuggestedSets, sug.SuggestedReps
		if sets < 1 {
			sets = defaultSets
		}
		if reps < 1 {
			reps = defaultReps
		}
		items = append(items, models.TemplateItem{ExerciseID: id, DefaultSets: sets, DefaultReps: reps})
	}

	tpl := models.WorkoutTemplate{ID: uuid.NewString(), Name: name, Items: items}
	s.templates = append(s.templates, tpl)

	if added {
		if err := s.st.Save(store.KeyExercises, s.exercises); err != nil {
			return models.WorkoutTemplate{}, err
		}
	}
	if err := s.st.Save(store.KeyTemplates, s.templates); err != nil {
		return models.WorkoutTemplate{}, err
	}
	return tpl, nil
}
