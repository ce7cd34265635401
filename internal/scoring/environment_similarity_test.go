package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensor-advisor/backend/internal/catalog"
)

func envScoreFor(t *testing.T, query string, record catalog.SensorRecord) float64 {
	t.Helper()
	scores := EnvironmentSimilarity(query, []catalog.SensorRecord{record})
	require.Len(t, scores, 1)
	return scores[0]
}

func TestEnvironmentSimilarity(t *testing.T) {
	t.Run("low temperature bonus", func(t *testing.T) {
		record := catalog.SensorRecord{OperatingTemp: "-30~60"}
		score := envScoreFor(t, "冷藏倉庫需要低溫感測", record)
		assert.InDelta(t, 0.3, score, 1e-9)
	})

	t.Run("narrow range misses low temperature bonus", func(t *testing.T) {
		record := catalog.SensorRecord{OperatingTemp: "0~50"}
		score := envScoreFor(t, "冷藏倉庫需要低溫感測", record)
		assert.Zero(t, score)
	})

	t.Run("humidity proof bonus", func(t *testing.T) {
		score := envScoreFor(t, "潮濕環境部署", catalog.SensorRecord{IPRating: "IP65"})
		assert.InDelta(t, 0.2, score, 1e-9)

		score = envScoreFor(t, "潮濕環境部署", catalog.SensorRecord{IPRating: "IP54"})
		assert.Zero(t, score)
	})

	t.Run("AI capability bonus", func(t *testing.T) {
		record := catalog.SensorRecord{Features: "智能分析平台"}
		score := envScoreFor(t, "人工智慧行為辨識", record)
		assert.InDelta(t, 0.2, score, 1e-9)
	})

	t.Run("realtime bonus", func(t *testing.T) {
		record := catalog.SensorRecord{Features: "連續監測記錄"}
		score := envScoreFor(t, "即時監控需求", record)
		assert.InDelta(t, 0.15, score, 1e-9)
	})

	t.Run("bonuses accumulate", func(t *testing.T) {
		record := catalog.SensorRecord{
			OperatingTemp: "-30~60",
			IPRating:      "IP66",
			Features:      "智能分析 連續監測",
		}
		score := envScoreFor(t, "低溫潮濕環境 人工智慧 即時監控", record)
		assert.InDelta(t, 0.3+0.2+0.2+0.15, score, 1e-9)
	})

	t.Run("no cues yields zero", func(t *testing.T) {
		record := catalog.SensorRecord{
			OperatingTemp: "-30~60",
			IPRating:      "IP65",
			Features:      "智能分析",
		}
		score := envScoreFor(t, "一般用途", record)
		assert.Zero(t, score)
	})

	t.Run("missing attributes contribute nothing", func(t *testing.T) {
		score := envScoreFor(t, "低溫潮濕環境 人工智慧 即時監控", catalog.SensorRecord{})
		assert.Zero(t, score)
	})
}
