package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/fitflow-app/fitflow-server/internal/ai"
	"github.com/fitflow-app/fitflow-server/internal/dto"
	"github.com/fitflow-app/fitflow-server/internal/workout"
	"github.com/gofiber/fiber/v2"
)

type AiHandler struct {
	generator *ai.Generator
	service   *workout.Service
}

func NewAiHandler(generator *ai.Generator, service *workout.Service) *AiHandler {
	return &AiHandler{generator: generator, service: service}
}

// Draft asks the configured provider for a workout plan and folds the
// suggestions into a new template when a name is given. A failed call
// leaves local data untouched.
func (h *AiHandler) Draft(c *fiber.Ctx) error {
	var req dto.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "prompt is required",
		})
	}

	var names []string
	for _, ex := range h.service.Exercises() {
		names = append(names, ex.Name)
	}

	suggestions, err := h.generator.Draft(h.service.AiSettings(), req.Prompt, names)
	if err != nil {
		if errors.Is(err, ai.ErrMissingAPIKey) || errors.Is(err, ai.ErrMissingBaseURL) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("ai draft failed", "error", err)
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(fiber.Map{"suggestions": suggestions})
	}

	tmpl, err := h.service.CreateTemplateFromSuggestions(req.Name, suggestions)
	if err != nil {
		return workoutError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"suggestions": suggestions,
		"template":    tmpl,
	})
}
