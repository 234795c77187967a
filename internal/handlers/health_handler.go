package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/tyforge-backend/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check is a static liveness acknowledgement, independent of database state.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "running backend"})
}
