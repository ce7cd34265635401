package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensor-advisor/backend/internal/catalog"
	"github.com/sensor-advisor/backend/internal/embedding"
)

// stubEncoder lets each test script the embedding collaborator.
type stubEncoder struct {
	encodeFunc      func(ctx context.Context, text string) ([]float32, error)
	encodeBatchFunc func(ctx context.Context, texts []string) ([][]float32, error)
}

func (s *stubEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	return s.encodeFunc(ctx, text)
}

func (s *stubEncoder) EncodeBatch(ctx context.Context, texts []string) ([][]float32, error) {
	return s.encodeBatchFunc(ctx, texts)
}

func testRecords() []catalog.SensorRecord {
	records := []catalog.SensorRecord{
		{Name: "TH-100", Type: "溫濕度", CompatibleModules: []string{"溫濕度監控偵測"}},
		{Name: "RAD-1", Type: "毫米波雷達", CompatibleModules: []string{"人流計算與氨氣感測"}},
	}
	for i := range records {
		records[i].SearchText = catalog.BuildSearchText(&records[i])
	}
	return records
}

func newTestEngine(t *testing.T, encoder *stubEncoder) *Engine {
	t.Helper()
	engine, err := NewEngine(context.Background(), testRecords(), encoder, nil, nil, 0)
	require.NoError(t, err)
	return engine
}

func TestNewEngine(t *testing.T) {
	t.Run("embeds every record", func(t *testing.T) {
		var embedded []string
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, texts []string) ([][]float32, error) {
				embedded = texts
				return [][]float32{{1, 0}, {0, 1}}, nil
			},
		}

		engine := newTestEngine(t, encoder)
		assert.Equal(t, 2, engine.CatalogSize())
		require.Len(t, embedded, 2)
		assert.Contains(t, embedded[0], "TH-100")
	})

	t.Run("embedding count mismatch is an error", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return [][]float32{{1, 0}}, nil
			},
		}

		_, err := NewEngine(context.Background(), testRecords(), encoder, nil, nil, 0)
		assert.Error(t, err)
	})

	t.Run("batch failure propagates", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return nil, fmt.Errorf("%w: connection refused", embedding.ErrUnavailable)
			},
		}

		_, err := NewEngine(context.Background(), testRecords(), encoder, nil, nil, 0)
		assert.ErrorIs(t, err, embedding.ErrUnavailable)
	})
}

func TestEngineRecommend(t *testing.T) {
	t.Run("semantic-only ranking", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return [][]float32{{1, 0}, {0, 1}}, nil
			},
			encodeFunc: func(_ context.Context, _ string) ([]float32, error) {
				return []float32{1, 0}, nil
			},
		}
		engine := newTestEngine(t, encoder)

		// English query: none of the rule scorers fire, only the
		// semantic signal separates the records.
		resp, err := engine.Recommend(context.Background(), Request{
			Query:     "hello",
			Weights:   Weights{Semantic: 1},
			Threshold: 0.5,
			TopK:      5,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.ID)
		require.Equal(t, 1, resp.TotalFound)
		top := resp.Recommendations[0]
		assert.Equal(t, "TH-100", top.Name)
		assert.Equal(t, "溫濕度", top.Type)
		assert.Equal(t, 1.0, top.SemanticScore)
		assert.Equal(t, 1.0, top.FinalScore)
		assert.Zero(t, top.TypeScore)
	})

	t.Run("results ordered by fused score", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return [][]float32{{1, 0}, {0, 1}}, nil
			},
			encodeFunc: func(_ context.Context, _ string) ([]float32, error) {
				return []float32{0.6, 0.8}, nil
			},
		}
		engine := newTestEngine(t, encoder)

		resp, err := engine.Recommend(context.Background(), Request{
			Query:     "hello",
			Weights:   Weights{Semantic: 1},
			Threshold: 0.1,
			TopK:      5,
		})
		require.NoError(t, err)

		require.Equal(t, 2, resp.TotalFound)
		assert.Equal(t, "RAD-1", resp.Recommendations[0].Name)
		assert.Equal(t, "TH-100", resp.Recommendations[1].Name)
		assert.Greater(t, resp.Recommendations[0].FinalScore, resp.Recommendations[1].FinalScore)
	})

	t.Run("intent analysis attached to response", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return [][]float32{{1, 0}, {0, 1}}, nil
			},
			encodeFunc: func(_ context.Context, _ string) ([]float32, error) {
				return []float32{1, 0}, nil
			},
		}
		engine := newTestEngine(t, encoder)

		resp, err := engine.Recommend(context.Background(), Request{
			Query:     "需要熱顯像感測器",
			Weights:   Weights{Semantic: 1},
			Threshold: 0.5,
			TopK:      5,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"熱顯像"}, resp.Intent.DirectSensorNeeds)
	})

	t.Run("threshold above all scores yields empty result", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return [][]float32{{1, 0}, {0, 1}}, nil
			},
			encodeFunc: func(_ context.Context, _ string) ([]float32, error) {
				return []float32{1, 0}, nil
			},
		}
		engine := newTestEngine(t, encoder)

		resp, err := engine.Recommend(context.Background(), Request{
			Query:     "hello",
			Weights:   Weights{Semantic: 1},
			Threshold: 1.01,
			TopK:      5,
		})
		require.NoError(t, err)
		assert.Zero(t, resp.TotalFound)
		assert.Empty(t, resp.Recommendations)
	})

	t.Run("encoder failure propagates as unavailable", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return [][]float32{{1, 0}, {0, 1}}, nil
			},
			encodeFunc: func(_ context.Context, _ string) ([]float32, error) {
				return nil, fmt.Errorf("%w: timeout", embedding.ErrUnavailable)
			},
		}
		engine := newTestEngine(t, encoder)

		_, err := engine.Recommend(context.Background(), Request{
			Query:     "hello",
			Weights:   Weights{Semantic: 1},
			Threshold: 0.5,
			TopK:      5,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, embedding.ErrUnavailable))
	})

	t.Run("type counts", func(t *testing.T) {
		encoder := &stubEncoder{
			encodeBatchFunc: func(_ context.Context, _ []string) ([][]float32, error) {
				return [][]float32{{1, 0}, {0, 1}}, nil
			},
		}
		engine := newTestEngine(t, encoder)

		counts := engine.TypeCounts()
		assert.Equal(t, map[string]int{"溫濕度": 1, "毫米波雷達": 1}, counts)
	})
}
