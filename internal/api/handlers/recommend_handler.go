package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sensor-advisor/backend/internal/embedding"
	"github.com/sensor-advisor/backend/internal/metrics"
	"github.com/sensor-advisor/backend/internal/recommend"
	"github.com/sensor-advisor/backend/pkg/config"
	"github.com/sensor-advisor/backend/pkg/logger"
)

const (
	maxQueryLength = 500
	maxTopK        = 20

	quickSearchThreshold = 0.3
)

type RecommendHandler struct {
	engine   *recommend.Engine
	defaults config.ScoringConfig
}

func NewRecommendHandler(engine *recommend.Engine, defaults config.ScoringConfig) *RecommendHandler {
	return &RecommendHandler{
		engine:   engine,
		defaults: defaults,
	}
}

// recommendRequest mirrors the public API schema. Optional fields fall
// back to the configured defaults.
type recommendRequest struct {
	Query             string   `json:"query"`
	TypeWeight        *float64 `json:"sensor_type_weight"`
	ModuleWeight      *float64 `json:"module_weight"`
	SemanticWeight    *float64 `json:"semantic_weight"`
	EnvironmentWeight *float64 `json:"environment_weight"`
	Threshold         *float64 `json:"threshold"`
	TopK              *int     `json:"top_k"`
}

func (h *RecommendHandler) HandleRecommend(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	engineReq, err := h.buildRequest(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	response, err := h.run(c, "recommend", engineReq)
	if err != nil {
		return h.fail(c, err)
	}

	message := "找到符合需求的感測器"
	if response.TotalFound == 0 {
		message = "沒有找到符合需求的感測器，請嘗試調整搜尋條件"
	}

	return c.JSON(fiber.Map{
		"success":          true,
		"message":          message,
		"intent_analysis":  response.Intent,
		"recommendations":  response.Recommendations,
		"total_found":      response.TotalFound,
		"search_timestamp": time.Now().Format(time.RFC3339),
	})
}

// HandleQuickSearch is the simplified GET surface: default weights, a
// lower threshold and a caller-supplied result limit.
func (h *RecommendHandler) HandleQuickSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" || len(query) > maxQueryLength {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "q is required and must be at most 500 characters",
		})
	}

	limit := c.QueryInt("limit", h.defaults.TopK)
	if limit < 1 || limit > maxTopK {
		limit = h.defaults.TopK
	}

	engineReq := recommend.Request{
		Query:     query,
		Weights:   h.defaultWeights(),
		Threshold: quickSearchThreshold,
		TopK:      limit,
	}

	response, err := h.run(c, "quick_search", engineReq)
	if err != nil {
		return h.fail(c, err)
	}

	results := make([]fiber.Map, 0, len(response.Recommendations))
	for _, rec := range response.Recommendations {
		results = append(results, fiber.Map{
			"name":     rec.Name,
			"type":     rec.Type,
			"score":    rec.FinalScore,
			"features": rec.Features,
			"modules":  rec.CompatibleModules,
		})
	}

	return c.JSON(fiber.Map{
		"results": results,
		"total":   len(results),
	})
}

func (h *RecommendHandler) run(c *fiber.Ctx, endpoint string, req recommend.Request) (*recommend.Response, error) {
	start := time.Now()
	response, err := h.engine.Recommend(c.Context(), req)
	metrics.RecommendDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.RecommendTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.RecommendTotal.WithLabelValues("ok").Inc()
	return response, nil
}

func (h *RecommendHandler) fail(c *fiber.Ctx, err error) error {
	logger.Error("Recommendation failed", zap.Error(err))

	if errors.Is(err, embedding.ErrUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"message": "Embedding service unavailable, please retry later",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Failed to process recommendation",
	})
}

func (h *RecommendHandler) buildRequest(req recommendRequest) (recommend.Request, error) {
	if req.Query == "" || len(req.Query) > maxQueryLength {
		return recommend.Request{}, errors.New("query is required and must be at most 500 characters")
	}

	weights := h.defaultWeights()
	for _, override := range []struct {
		value  *float64
		target *float64
	}{
		{req.TypeWeight, &weights.Type},
		{req.ModuleWeight, &weights.Module},
		{req.SemanticWeight, &weights.Semantic},
		{req.EnvironmentWeight, &weights.Environment},
	} {
		if override.value == nil {
			continue
		}
		if *override.value < 0 || *override.value > 1 {
			return recommend.Request{}, errors.New("weights must be between 0 and 1")
		}
		*override.target = *override.value
	}

	threshold := h.defaults.Threshold
	if req.Threshold != nil {
		if *req.Threshold < 0 || *req.Threshold > 1 {
			return recommend.Request{}, errors.New("threshold must be between 0 and 1")
		}
		threshold = *req.Threshold
	}

	topK := h.defaults.TopK
	if req.TopK != nil {
		if *req.TopK < 1 || *req.TopK > maxTopK {
			return recommend.Request{}, errors.New("top_k must be between 1 and 20")
		}
		topK = *req.TopK
	}

	return recommend.Request{
		Query:     req.Query,
		Weights:   weights,
		Threshold: threshold,
		TopK:      topK,
	}, nil
}

func (h *RecommendHandler) defaultWeights() recommend.Weights {
	return recommend.Weights{
		Type:        h.defaults.TypeWeight,
		Module:      h.defaults.ModuleWeight,
		Semantic:    h.defaults.SemanticWeight,
		Environment: h.defaults.EnvironmentWeight,
	}
}
