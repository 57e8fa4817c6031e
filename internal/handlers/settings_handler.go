package handlers

import (
	"github.com/fitflow-app/fitflow-server/internal/dto"
	"github.com/fitflow-app/fitflow-server/internal/models"
	"github.com/fitflow-app/fitflow-server/internal/workout"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service *workout.Service
}

func NewSettingsHandler(service *workout.Service) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) GetAiSettings(c *fiber.Ctx) error {
	cfg := h.service.AiSettings()
	// The key never leaves the server once stored.
	cfg.APIKey = ""
	return c.JSON(cfg)
}

func (h *SettingsHandler) UpdateAiSettings(c *fiber.Ctx) error {
	var cfg models.AiSettings
	if err := c.BodyParser(&cfg); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.SetAiSettings(cfg); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"message": "AI settings saved"})
}

func (h *SettingsHandler) GetTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"theme": h.service.Theme()})
}

func (h *SettingsHandler) UpdateTheme(c *fiber.Ctx) error {
	var req dto.ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.service.SetTheme(req.Theme); err != nil {
		return workoutError(c, err)
	}
	return c.JSON(fiber.Map{"theme": req.Theme})
}
