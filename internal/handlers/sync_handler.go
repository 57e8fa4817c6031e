package handlers

import (
	"errors"
	"log/slog"

	"github.com/fitflow-app/fitflow-server/internal/dto"
	"github.com/fitflow-app/fitflow-server/internal/middleware"
	"github.com/fitflow-app/fitflow-server/internal/mirror"
	"github.com/gofiber/fiber/v2"
)

type SyncHandler struct {
	service *mirror.Service
}

func NewSyncHandler(service *mirror.Service) *SyncHandler {
	return &SyncHandler{service: service}
}

func (h *SyncHandler) Push(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	result, err := h.service.Push(userID)
	if err != nil {
		return syncError(c, "push", err)
	}
	return c.JSON(result)
}

func (h *SyncHandler) Pull(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	result, err := h.service.Pull(userID)
	if err != nil {
		return syncError(c, "pull", err)
	}
	return c.JSON(result)
}

func syncError(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, mirror.ErrNotAuthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, mirror.ErrSyncInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, mirror.ErrMalformedRow):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	default:
		slog.Error("sync failed", "op", op, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Sync failed: " + err.Error(),
		})
	}
}
