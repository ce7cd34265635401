package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sensor-advisor/backend/internal/recommend"
)

type CatalogHandler struct {
	engine *recommend.Engine
}

func NewCatalogHandler(engine *recommend.Engine) *CatalogHandler {
	return &CatalogHandler{engine: engine}
}

func (h *CatalogHandler) HandleSensorTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"sensor_types":  h.engine.TypeCounts(),
		"total_sensors": h.engine.CatalogSize(),
	})
}

func (h *CatalogHandler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"initialized":   true,
		"total_sensors": h.engine.CatalogSize(),
	})
}
