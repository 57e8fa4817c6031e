package workout

import (
	"github.com/google/uuid"

	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/store"
)

// Set-level operations used constantly by the Today view. All of them locate
// the day by date key, mutate in place, and persist the workouts snapshot.

func (s *Service) withItem(date, itemID string, fn func(item *models.WorkoutItem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for wi := range s.workouts {
		if s.workouts[wi].Date != date {
			continue
		}
		for ii := range s.workouts[wi].Items {
			if s.workouts[wi].Items[ii].ID == itemID {
				if err := fn(&s.workouts[wi].Items[ii]); err != nil {
					return err
				}
				return s.st.Save(store.KeyWorkouts, s.workouts)
			}
		}
	}
	return ErrItemNotFound
}

// ToggleSetCompleted flips one set's completed flag. Idempotent per pair of
// calls: toggling twice restores the original value.
func (s *Service) ToggleSetCompleted(date, itemID, setID string) error {
	return s.withItem(date, itemID, func(item *models.WorkoutItem) error {
		for i := range item.Sets {
			if item.Sets[i].ID == setID {
				item.Sets[i].Completed = !item.Sets[i].Completed
				return nil
			}
		}
		return ErrSetNotFound
	})
}

// UpdateSetReps sets the rep count on one set.
func (s *Service) UpdateSetReps(date, itemID, setID string, reps int) error {
	return s.withItem(date, itemID, func(item *models.WorkoutItem) error {
		for i := range item.Sets {
			if item.Sets[i].ID == setID {
				item.Sets[i].Reps = reps
				return nil
			}
		}
		return ErrSetNotFound
	})
}

// AddSet appends a set to an item, inheriting the previous set's rep count.
func (s *Service) AddSet(date, itemID string) error {
	return s.withItem(date, itemID, func(item *models.WorkoutItem) error {
		reps := defaultReps
		if n := len(item.Sets); n > 0 {
			reps = item.Sets[n-1].Reps
		}
		item.Sets = append(item.Sets, models.WorkoutSet{ID: uuid.NewString(), Reps: reps})
		return nil
	})
}

// RemoveSet deletes one set from an item.
func (s *Service) RemoveSet(date, itemID, setID string) error {
	return s.withItem(date, itemID, func(item *models.WorkoutItem) error {
		for i := range item.Sets {
			if item.Sets[i].ID == setID {
				item.Sets = append(item.Sets[:i], item.Sets[i+1:]...)
				return nil
			}
		}
		return ErrSetNotFound
	})
}

// UpdateItemNotes replaces the free-text notes on an item.
func (s *Service) UpdateItemNotes(date, itemID, notes string) error {
	return s.withItem(date, itemID, func(item *models.WorkoutItem) error {
		item.Notes = notes
		return nil
	})
}

// RemoveItem drops an item from a day's workout.
func (s *Service) RemoveItem(date, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for wi := range s.workouts {
		if s.workouts[wi].Date != date {
			continue
		}
		items := s.workouts[wi].Items
		for ii := range items {
			if items[ii].ID == itemID {
				s.workouts[wi].Items = append(items[:ii], items[ii+1:]...)
				return s.st.Save(store.KeyWorkouts, s.workouts)
			}
		}
	}
	return ErrItemNotFound
}
