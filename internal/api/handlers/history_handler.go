package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sensor-advisor/backend/internal/storage/sqlite"
	"github.com/sensor-advisor/backend/pkg/logger"
)

type HistoryHandler struct {
	store *sqlite.Client
}

func NewHistoryHandler(store *sqlite.Client) *HistoryHandler {
	return &HistoryHandler{store: store}
}

func (h *HistoryHandler) HandleHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	records, err := h.store.ListRecent(limit)
	if err != nil {
		logger.Error("Failed to list recommendation history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	history := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		history = append(history, fiber.Map{
			"id":           record.ID,
			"query":        record.QueryText,
			"result_count": record.ResultCount,
			"threshold":    record.Threshold,
			"top_k":        record.TopK,
			"latency_ms":   record.LatencyMS,
			"created_at":   record.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"history": history,
		"total":   len(history),
	})
}
