// Package embedding wraps the external embedding collaborator. The rest of
// the system treats it as opaque: text in, fixed-length vector out. Its
// failures are the only errors that propagate out of a recommendation.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/sensor-advisor/backend/pkg/circuitbreaker"
	"github.com/sensor-advisor/backend/pkg/logger"
	"github.com/sensor-advisor/backend/pkg/retry"
)

// ErrUnavailable distinguishes embedding-collaborator failures so callers
// can decide on fallback or retry instead of treating them as zero
// similarity.
var ErrUnavailable = errors.New("embedding service unavailable")

// Encoder is the collaborator contract consumed by the recommendation
// engine.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	EncodeBatch(ctx context.Context, texts []string) ([][]float32, error)
}

type Client struct {
	client      *openai.Client
	model       string
	timeout     time.Duration
	batchSize   int
	cb          *circuitbreaker.CircuitBreaker
	retryConfig retry.Config
}

func NewClient(apiKey, model string, timeoutSec, batchSize int) *Client {
	if timeoutSec <= 0 {
		timeoutSec = 15
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	cb := circuitbreaker.NewCircuitBreaker("embedding", circuitbreaker.Config{
		MaxRequests:      5,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Logger:           logger.GetLogger(),
	})

	retryConfig := retry.Config{
		MaxAttempts:    3,
		InitialDelay:   500 * time.Millisecond,
		MaxDelay:       5 * time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.1,
		Logger:         logger.GetLogger(),
	}

	logger.Info("Embedding client initialized", zap.String("model", model))

	return &Client{
		client:      openai.NewClient(apiKey),
		model:       model,
		timeout:     time.Duration(timeoutSec) * time.Second,
		batchSize:   batchSize,
		cb:          cb,
		retryConfig: retryConfig,
	}
}

func (c *Client) Encode(ctx context.Context, text string) ([]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var embedding []float32

	err := c.cb.Execute(ctx, func() error {
		return retry.Do(ctx, c.retryConfig, func() error {
			resp, err := c.client.CreateEmbeddings(
				ctx,
				openai.EmbeddingRequest{
					Input: []string{text},
					Model: openai.EmbeddingModel(c.model),
				},
			)
			if err != nil {
				return fmt.Errorf("failed to encode text: %w", err)
			}

			embedding = resp.Data[0].Embedding
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return embedding, nil
}

func (c *Client) EncodeBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	embeddings := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += c.batchSize {
		end := start + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		batchCtx, cancel := context.WithTimeout(ctx, c.timeout*2)
		err := c.cb.Execute(batchCtx, func() error {
			return retry.Do(batchCtx, c.retryConfig, func() error {
				resp, err := c.client.CreateEmbeddings(
					batchCtx,
					openai.EmbeddingRequest{
						Input: batch,
						Model: openai.EmbeddingModel(c.model),
					},
				)
				if err != nil {
					return fmt.Errorf("failed to encode batch: %w", err)
				}

				for _, data := range resp.Data {
					embeddings = append(embeddings, data.Embedding)
				}
				return nil
			})
		})
		cancel()

		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	logger.Debug("Batch embeddings generated", zap.Int("count", len(embeddings)))

	return embeddings, nil
}
