package handlers

import (
	"errors"

	"github.com/fitflow-app/fitflow-server/internal/dto"
	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/workout"
	"github.com/gofiber/fiber/v2"
)

type WorkoutHandler struct {
	service *workout.Service
}

func NewWorkoutHandler(service *workout.Service) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

// workoutError maps the service's sentinel errors onto HTTP statuses.
func workoutError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, workout.ErrExerciseNotFound),
		errors.Is(err, workout.ErrTemplateNotFound),
		errors.Is(err, workout.ErrItemNotFound),
		errors.Is(err, workout.ErrSetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, workout.ErrNameRequired),
		errors.Is(err, workout.ErrInvalidCategory),
		errors.Is(err, workout.ErrInvalidTheme),
		errors.Is(err, workout.ErrInvalidProvider):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
}

func (h *WorkoutHandler) ListExercises(c *fiber.Ctx) error {
	return c.JSON(h.service.Exercises())
}

func (h *WorkoutHandler) CommonExercises(c *fiber.Ctx) error {
	return c.JSON(h.service.CommonExercises())
}

func (h *WorkoutHandler) FavoriteExercises(c *fiber.Ctx) error {
	return c.JSON(h.service.FavoriteExercises())
}

func (h *WorkoutHandler) CreateExercise(c *fiber.Ctx) error {
	var ex models.Exercise
	if err := c.BodyParser(&ex); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	created, err := h.service.AddExercise(ex)
	if err != nil {
		return workoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *WorkoutHandler) UpdateExercise(c *fiber.Ctx) error {
	var ex models.Exercise
	if err := c.BodyParser(&ex); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	ex.ID = c.Params("id")

	if err := h.service.UpdateExercise(ex); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exercise updated"})
}

func (h *WorkoutHandler) DeleteExercise(c *fiber.Ctx) error {
	if err := h.service.DeleteExercise(c.Params("id")); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Exercise deleted"})
}

func (h *WorkoutHandler) ToggleFavorite(c *fiber.Ctx) error {
	if err := h.service.ToggleFavorite(c.Params("id")); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Favorite toggled"})
}

func (h *WorkoutHandler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.service.Templates())
}

func (h *WorkoutHandler) GetTemplate(c *fiber.Ctx) error {
	t, ok := h.service.TemplateByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: workout.ErrTemplateNotFound.Error(),
		})
	}
	return c.JSON(t)
}

func (h *WorkoutHandler) CreateTemplate(c *fiber.Ctx) error {
	var t models.WorkoutTemplate
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	created, err := h.service.AddTemplate(t)
	if err != nil {
		return workoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *WorkoutHandler) UpdateTemplate(c *fiber.Ctx) error {
	var t models.WorkoutTemplate
	if err := c.BodyParser(&t); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	t.ID = c.Params("id")

	if err := h.service.UpdateTemplate(t); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Template updated"})
}

func (h *WorkoutHandler) DeleteTemplate(c *fiber.Ctx) error {
	if err := h.service.DeleteTemplate(c.Params("id")); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Template deleted"})
}

func (h *WorkoutHandler) ListWorkouts(c *fiber.Ctx) error {
	return c.JSON(h.service.Workouts())
}

func (h *WorkoutHandler) TodayWorkout(c *fiber.Ctx) error {
	return c.JSON(h.service.TodayWorkout())
}

func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	date := c.Params("date")
	w, ok := h.service.WorkoutOn(date)
	if !ok {
		return c.JSON(models.DailyWorkout{Date: date, Items: []models.WorkoutItem{}})
	}
	return c.JSON(w)
}

func (h *WorkoutHandler) PutWorkout(c *fiber.Ctx) error {
	var w models.DailyWorkout
	if err := c.BodyParser(&w); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	w.Date = c.Params("date")

	if err := h.service.UpdateDailyWorkout(w); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Workout saved"})
}

func (h *WorkoutHandler) AssignExercise(c *fiber.Ctx) error {
	var req dto.AssignExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.DateKey == "" {
		req.DateKey = workout.TodayKey()
	}

	item, err := h.service.AddExerciseToDay(req.DateKey, req.ExerciseID, req.Sets, req.Reps)
	if err != nil {
		return workoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *WorkoutHandler) AssignTemplate(c *fiber.Ctx) error {
	var req dto.AssignTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.DateKey == "" {
		req.DateKey = workout.TodayKey()
	}

	items, err := h.service.AddTemplateToDay(req.DateKey, req.TemplateID)
	if err != nil {
		return workoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(items)
}

func (h *WorkoutHandler) ToggleSet(c *fiber.Ctx) error {
	err := h.service.ToggleSetCompleted(c.Params("date"), c.Params("itemId"), c.Params("setId"))
	if err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Set toggled"})
}

func (h *WorkoutHandler) UpdateSetReps(c *fiber.Ctx) error {
	var req dto.UpdateRepsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	err := h.service.UpdateSetReps(c.Params("date"), c.Params("itemId"), c.Params("setId"), req.Reps)
	if err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Reps updated"})
}

func (h *WorkoutHandler) AddSet(c *fiber.Ctx) error {
	if err := h.service.AddSet(c.Params("date"), c.Params("itemId")); err != nil {
		return workoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Set added"})
}

func (h *WorkoutHandler) RemoveSet(c *fiber.Ctx) error {
	err := h.service.RemoveSet(c.Params("date"), c.Params("itemId"), c.Params("setId"))
	if err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Set removed"})
}

func (h *WorkoutHandler) UpdateNotes(c *fiber.Ctx) error {
	var req dto.UpdateNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	err := h.service.UpdateItemNotes(c.Params("date"), c.Params("itemId"), req.Notes)
	if err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notes updated"})
}

func (h *WorkoutHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.service.RemoveItem(c.Params("date"), c.Params("itemId")); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Item removed"})
}

func (h *WorkoutHandler) Preferences(c *fiber.Ctx) error {
	return c.JSON(h.service.Preferences())
}

func (h *WorkoutHandler) UpdatePreference(c *fiber.Ctx) error {
	var req dto.PreferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.UpdatePreference(c.Params("exerciseId"), req.Sets, req.Reps); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Preference saved"})
}
