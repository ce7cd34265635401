// Package recommend fuses the rule-based similarity models with the
// semantic embedding signal into one ranked recommendation list.
package recommend

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sensor-advisor/backend/internal/cache/redis"
	"github.com/sensor-advisor/backend/internal/catalog"
	"github.com/sensor-advisor/backend/internal/embedding"
	"github.com/sensor-advisor/backend/internal/intent"
	"github.com/sensor-advisor/backend/internal/metrics"
	"github.com/sensor-advisor/backend/internal/scoring"
	"github.com/sensor-advisor/backend/internal/storage/models"
	"github.com/sensor-advisor/backend/internal/storage/sqlite"
	"github.com/sensor-advisor/backend/pkg/logger"
	"github.com/sensor-advisor/backend/pkg/utils"
)

// Engine holds the immutable per-process state: the catalog, its
// precomputed search-text embeddings and the collaborator clients. It is
// constructed once at startup and safe for concurrent use; requests never
// mutate it.
type Engine struct {
	records          []catalog.SensorRecord
	recordEmbeddings [][]float32
	encoder          embedding.Encoder
	cache            *redis.Client
	history          *sqlite.Client
	cacheTTL         time.Duration
}

type Request struct {
	Query     string
	Weights   Weights
	Threshold float64
	TopK      int
}

// Recommendation is one ranked catalog entry with all component scores
// attached for explainability.
type Recommendation struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	FinalScore        float64  `json:"final_score"`
	TypeScore         float64  `json:"sensor_type_similarity"`
	ModuleScore       float64  `json:"module_similarity"`
	SemanticScore     float64  `json:"semantic_similarity"`
	EnvironmentScore  float64  `json:"environment_similarity"`
	CompatibleModules []string `json:"compatible_modules"`
	Features          string   `json:"features,omitempty"`
	IPRating          string   `json:"ip_rating,omitempty"`
	PowerConsumption  *float64 `json:"power_consumption,omitempty"`
	OperatingTemp     string   `json:"operating_temp,omitempty"`
	Range             string   `json:"range,omitempty"`
	Precision         string   `json:"precision,omitempty"`
}

type Response struct {
	ID              string           `json:"id"`
	Intent          intent.Result    `json:"intent_analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalFound      int              `json:"total_found"`
	LatencyMS       int              `json:"latency_ms"`
}

// NewEngine embeds every catalog search document once and returns the
// ready engine. cache and history may be nil; both are optional
// collaborators.
func NewEngine(ctx context.Context, records []catalog.SensorRecord, encoder embedding.Encoder, cache *redis.Client, history *sqlite.Client, cacheTTL time.Duration) (*Engine, error) {
	texts := make([]string, len(records))
	for i := range records {
		texts[i] = records[i].SearchText
	}

	recordEmbeddings, err := encoder.EncodeBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed catalog: %w", err)
	}
	if len(recordEmbeddings) != len(records) {
		return nil, fmt.Errorf("catalog embedding count %d does not match record count %d", len(recordEmbeddings), len(records))
	}

	logger.Info("Recommendation engine ready",
		zap.Int("records", len(records)),
	)

	return &Engine{
		records:          records,
		recordEmbeddings: recordEmbeddings,
		encoder:          encoder,
		cache:            cache,
		history:          history,
		cacheTTL:         cacheTTL,
	}, nil
}

// CatalogSize returns the number of loaded records.
func (e *Engine) CatalogSize() int {
	return len(e.records)
}

// TypeCounts returns the number of catalog records per sensor type.
func (e *Engine) TypeCounts() map[string]int {
	counts := make(map[string]int)
	for i := range e.records {
		counts[e.records[i].Type]++
	}
	return counts
}

// Recommend runs the full pipeline for one query: intent extraction, the
// three rule scorers, the semantic similarity against precomputed catalog
// embeddings, fusion, threshold filtering and top-k ranking. Only an
// embedding-collaborator failure is an error; an empty result is not.
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	requestID := uuid.New().String()

	requestHash := utils.HashString(fmt.Sprintf("%s|%.4f|%.4f|%.4f|%.4f|%.4f|%d",
		req.Query, req.Weights.Type, req.Weights.Module, req.Weights.Semantic,
		req.Weights.Environment, req.Threshold, req.TopK))

	if e.cache != nil {
		var cached Response
		hit, err := e.cache.GetRecommendation(ctx, requestHash, &cached)
		if err != nil {
			logger.Warn("Recommendation cache lookup failed", zap.Error(err))
		} else if hit {
			metrics.CacheHits.WithLabelValues("recommendation").Inc()
			return &cached, nil
		}
		metrics.CacheMisses.WithLabelValues("recommendation").Inc()
	}

	queryIntent := intent.Analyze(req.Query)
	logger.Debug("Query intent analyzed",
		zap.String("request_id", requestID),
		zap.Strings("direct_needs", queryIntent.DirectSensorNeeds),
		zap.Strings("exclusions", queryIntent.ExcludeKeywords),
	)

	semanticScores, err := e.semanticScores(ctx, req.Query)
	if err != nil {
		metrics.EmbeddingFailures.Inc()
		return nil, err
	}

	typeScores := scoring.TypeSimilarity(req.Query, queryIntent, e.records)
	moduleScores := scoring.ModuleSimilarity(req.Query, e.records)
	envScores := scoring.EnvironmentSimilarity(req.Query, e.records)

	candidates, err := Rank(e.records, typeScores, moduleScores, semanticScores, envScores,
		req.Weights, req.Threshold, req.TopK)
	if err != nil {
		return nil, err
	}

	latency := int(time.Since(start).Milliseconds())
	response := e.buildResponse(requestID, queryIntent, candidates, latency)

	logger.Info("Recommendation produced",
		zap.String("request_id", requestID),
		zap.String("query", req.Query),
		zap.Int("results", response.TotalFound),
		zap.Int("latency_ms", latency),
	)

	metrics.ResultCount.Observe(float64(response.TotalFound))
	if len(candidates) > 0 {
		metrics.FusedScore.Observe(candidates[0].FinalScore)
	}

	e.recordHistory(requestID, req, candidates, latency)

	if e.cache != nil {
		if err := e.cache.SetRecommendation(ctx, requestHash, response, e.cacheTTL); err != nil {
			logger.Warn("Failed to cache recommendation", zap.Error(err))
		}
	}

	return response, nil
}

// semanticScores encodes the query and scores it against every record's
// precomputed embedding, one cosine similarity per record in catalog
// order. Encoder failures propagate so the caller can decide on fallback.
func (e *Engine) semanticScores(ctx context.Context, query string) ([]float64, error) {
	queryEmbedding, err := e.queryEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	scores := make([]float64, len(e.recordEmbeddings))
	for i, recordEmbedding := range e.recordEmbeddings {
		scores[i] = embedding.CosineSimilarity(queryEmbedding, recordEmbedding)
	}
	return scores, nil
}

func (e *Engine) queryEmbedding(ctx context.Context, query string) ([]float32, error) {
	if e.cache == nil {
		return e.encoder.Encode(ctx, query)
	}

	textHash := utils.HashString(query)
	cached, hit, err := e.cache.GetEmbedding(ctx, textHash)
	if err != nil {
		logger.Warn("Embedding cache lookup failed", zap.Error(err))
	} else if hit {
		metrics.CacheHits.WithLabelValues("embedding").Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues("embedding").Inc()

	queryEmbedding, err := e.encoder.Encode(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := e.cache.SetEmbedding(ctx, textHash, queryEmbedding, e.cacheTTL); err != nil {
		logger.Warn("Failed to cache embedding", zap.Error(err))
	}

	return queryEmbedding, nil
}

func (e *Engine) buildResponse(requestID string, queryIntent intent.Result, candidates []ScoredCandidate, latency int) *Response {
	recommendations := make([]Recommendation, 0, len(candidates))
	for _, c := range candidates {
		recommendations = append(recommendations, Recommendation{
			Name:              c.Record.Name,
			Type:              c.Record.Type,
			FinalScore:        round3(c.FinalScore),
			TypeScore:         round3(c.TypeScore),
			ModuleScore:       round3(c.ModuleScore),
			SemanticScore:     round3(c.SemanticScore),
			EnvironmentScore:  round3(c.EnvironmentScore),
			CompatibleModules: c.Record.CompatibleModules,
			Features:          c.Record.Features,
			IPRating:          c.Record.IPRating,
			PowerConsumption:  c.Record.PowerConsumption,
			OperatingTemp:     c.Record.OperatingTemp,
			Range:             c.Record.Range,
			Precision:         c.Record.Precision,
		})
	}

	return &Response{
		ID:              requestID,
		Intent:          queryIntent,
		Recommendations: recommendations,
		TotalFound:      len(recommendations),
		LatencyMS:       latency,
	}
}

// recordHistory persists the request outcome for audits. History is an
// optional collaborator; failures are logged, never surfaced.
func (e *Engine) recordHistory(requestID string, req Request, candidates []ScoredCandidate, latency int) {
	if e.history == nil {
		return
	}

	record := &models.RecommendationRecord{
		ID:                requestID,
		QueryText:         req.Query,
		TypeWeight:        req.Weights.Type,
		ModuleWeight:      req.Weights.Module,
		SemanticWeight:    req.Weights.Semantic,
		EnvironmentWeight: req.Weights.Environment,
		Threshold:         req.Threshold,
		TopK:              req.TopK,
		ResultCount:       len(candidates),
		LatencyMS:         latency,
		CreatedAt:         time.Now(),
	}

	items := make([]models.RecommendationItem, 0, len(candidates))
	for rank, c := range candidates {
		items = append(items, models.RecommendationItem{
			Rank:             rank + 1,
			SensorName:       c.Record.Name,
			SensorType:       c.Record.Type,
			FinalScore:       c.FinalScore,
			TypeScore:        c.TypeScore,
			ModuleScore:      c.ModuleScore,
			SemanticScore:    c.SemanticScore,
			EnvironmentScore: c.EnvironmentScore,
		})
	}

	if err := e.history.InsertRecommendation(record, items); err != nil {
		logger.Warn("Failed to record recommendation history",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
