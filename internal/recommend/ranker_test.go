package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensor-advisor/backend/internal/catalog"
)

var defaultWeights = Weights{Type: 0.4, Module: 0.3, Semantic: 0.25, Environment: 0.05}

func namedRecords(names ...string) []catalog.SensorRecord {
	records := make([]catalog.SensorRecord, len(names))
	for i, name := range names {
		records[i] = catalog.SensorRecord{Name: name}
	}
	return records
}

func TestRank(t *testing.T) {
	t.Run("fused score is the weighted sum", func(t *testing.T) {
		candidates, err := Rank(
			namedRecords("A"),
			[]float64{0.5}, []float64{0.5}, []float64{0.5}, []float64{0.5},
			defaultWeights, 0, 5,
		)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.InDelta(t, 0.5, candidates[0].FinalScore, 1e-9)
		assert.Equal(t, 0.5, candidates[0].TypeScore)
		assert.Equal(t, "A", candidates[0].Record.Name)
	})

	t.Run("sorted descending", func(t *testing.T) {
		candidates, err := Rank(
			namedRecords("A", "B", "C"),
			[]float64{0.2, 0.9, 0.5},
			[]float64{0, 0, 0},
			[]float64{0, 0, 0},
			[]float64{0, 0, 0},
			Weights{Type: 1}, 0, 5,
		)
		require.NoError(t, err)
		require.Len(t, candidates, 3)
		assert.Equal(t, "B", candidates[0].Record.Name)
		assert.Equal(t, "C", candidates[1].Record.Name)
		assert.Equal(t, "A", candidates[2].Record.Name)
	})

	t.Run("catalog order preserved among ties", func(t *testing.T) {
		candidates, err := Rank(
			namedRecords("A", "B", "C"),
			[]float64{0.7, 0.7, 0.7},
			[]float64{0, 0, 0},
			[]float64{0, 0, 0},
			[]float64{0, 0, 0},
			Weights{Type: 1}, 0, 5,
		)
		require.NoError(t, err)
		require.Len(t, candidates, 3)
		assert.Equal(t, "A", candidates[0].Record.Name)
		assert.Equal(t, "B", candidates[1].Record.Name)
		assert.Equal(t, "C", candidates[2].Record.Name)
	})

	t.Run("threshold filters", func(t *testing.T) {
		candidates, err := Rank(
			namedRecords("A", "B"),
			[]float64{0.4, 0.6},
			[]float64{0, 0},
			[]float64{0, 0},
			[]float64{0, 0},
			Weights{Type: 1}, 0.5, 5,
		)
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "B", candidates[0].Record.Name)
	})

	t.Run("threshold above all scores yields empty result", func(t *testing.T) {
		candidates, err := Rank(
			namedRecords("A", "B"),
			[]float64{1, 1}, []float64{1, 1}, []float64{1, 1}, []float64{1, 1},
			defaultWeights, 1.1, 5,
		)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})

	t.Run("topK truncates after sorting", func(t *testing.T) {
		candidates, err := Rank(
			namedRecords("A", "B", "C", "D"),
			[]float64{0.1, 0.9, 0.5, 0.7},
			[]float64{0, 0, 0, 0},
			[]float64{0, 0, 0, 0},
			[]float64{0, 0, 0, 0},
			Weights{Type: 1}, 0, 2,
		)
		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, "B", candidates[0].Record.Name)
		assert.Equal(t, "D", candidates[1].Record.Name)
	})

	t.Run("score vector length mismatch is an error", func(t *testing.T) {
		_, err := Rank(
			namedRecords("A", "B"),
			[]float64{0.5},
			[]float64{0, 0},
			[]float64{0, 0},
			[]float64{0, 0},
			defaultWeights, 0, 5,
		)
		assert.Error(t, err)
	})

	t.Run("empty catalog", func(t *testing.T) {
		candidates, err := Rank(nil, nil, nil, nil, nil, defaultWeights, 0, 5)
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}
