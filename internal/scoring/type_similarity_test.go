package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensor-advisor/backend/internal/catalog"
	"github.com/sensor-advisor/backend/internal/intent"
)

func typeScoreFor(t *testing.T, query, sensorType string) float64 {
	t.Helper()
	records := []catalog.SensorRecord{{Type: sensorType}}
	scores := TypeSimilarity(query, intent.Analyze(query), records)
	require.Len(t, scores, 1)
	return scores[0]
}

func TestTypeSimilarity(t *testing.T) {
	t.Run("direct need scores 0.9", func(t *testing.T) {
		score := typeScoreFor(t, "需要熱顯像感測器偵測人員體溫", "熱顯像")
		assert.Equal(t, 0.9, score)
	})

	t.Run("excluded type scores zero", func(t *testing.T) {
		// Cold-storage context mentions temperature without requesting it.
		score := typeScoreFor(t, "低溫環境的冷藏倉庫監控", "溫濕度")
		assert.Zero(t, score)
	})

	t.Run("unknown type scores zero", func(t *testing.T) {
		score := typeScoreFor(t, "需要監控", "未知型號")
		assert.Zero(t, score)
	})

	t.Run("no primary match scores zero", func(t *testing.T) {
		score := typeScoreFor(t, "農業灌溉系統", "熱顯像")
		assert.Zero(t, score)
	})

	t.Run("medium list normalization", func(t *testing.T) {
		// One of eight primary keywords: 1/(8/1.7)*4.
		score := typeScoreFor(t, "紅外線", "熱顯像")
		assert.InDelta(t, 0.85, score, 1e-9)
	})

	t.Run("large list normalization", func(t *testing.T) {
		// One of nineteen primary keywords: 1/(19/2.5)*4.
		score := typeScoreFor(t, "氣體", "氣體感測")
		assert.InDelta(t, 10.0/19.0, score, 1e-9)
	})

	t.Run("small list saturates at 1.0", func(t *testing.T) {
		score := typeScoreFor(t, "雷達偵測人潮", "毫米波雷達")
		assert.Equal(t, 1.0, score)
	})

	t.Run("scores stay within bounds", func(t *testing.T) {
		query := "溫度 濕度 溫濕度 環境溫度 環境濕度 監控 控制 農業 環境 溫室 機房 倉儲 感測器"
		records := []catalog.SensorRecord{
			{Type: "溫濕度"}, {Type: "熱顯像"}, {Type: "氣體感測"},
		}
		scores := TypeSimilarity(query, intent.Analyze(query), records)
		for _, score := range scores {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	})

	t.Run("one score per record in catalog order", func(t *testing.T) {
		records := []catalog.SensorRecord{
			{Type: "熱顯像"}, {Type: "毫米波雷達"}, {Type: "溫濕度"},
		}
		query := "紅外線"
		scores := TypeSimilarity(query, intent.Analyze(query), records)
		require.Len(t, scores, 3)
		assert.InDelta(t, 0.85, scores[0], 1e-9)
		assert.Zero(t, scores[1])
	})
}
