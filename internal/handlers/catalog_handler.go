package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/tyforge-backend/internal/services"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) Plans(c *fiber.Ctx) error {
	plans, err := h.catalog.Plans()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(plans)
}

func (h *CatalogHandler) Services(c *fiber.Ctx) error {
	list, err := h.catalog.Services()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(list)
}
