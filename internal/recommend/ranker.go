package recommend

import (
	"fmt"
	"sort"

	"github.com/sensor-advisor/backend/internal/catalog"
)

// Weights are the caller-supplied fusion weights. They are not required to
// sum to 1.
type Weights struct {
	Type        float64 `json:"sensor_type_weight"`
	Module      float64 `json:"module_weight"`
	Semantic    float64 `json:"semantic_weight"`
	Environment float64 `json:"environment_weight"`
}

// ScoredCandidate carries the four component scores and the fused score
// for one (query, record) pair. Ephemeral: it exists only to produce the
// ranked output list for a single request.
type ScoredCandidate struct {
	Record *catalog.SensorRecord

	TypeScore        float64
	ModuleScore      float64
	SemanticScore    float64
	EnvironmentScore float64
	FinalScore       float64
}

// Rank fuses the four per-record signal vectors, drops records below the
// threshold, sorts descending by fused score (catalog order preserved
// among exact ties) and truncates to topK. An empty result is not an
// error.
func Rank(records []catalog.SensorRecord, typeScores, moduleScores, semanticScores, envScores []float64, weights Weights, threshold float64, topK int) ([]ScoredCandidate, error) {
	n := len(records)
	for _, scores := range [][]float64{typeScores, moduleScores, semanticScores, envScores} {
		if len(scores) != n {
			return nil, fmt.Errorf("score vector length %d does not match catalog size %d", len(scores), n)
		}
	}

	candidates := make([]ScoredCandidate, 0, n)
	for i := range records {
		final := typeScores[i]*weights.Type +
			moduleScores[i]*weights.Module +
			semanticScores[i]*weights.Semantic +
			envScores[i]*weights.Environment

		if final < threshold {
			continue
		}

		candidates = append(candidates, ScoredCandidate{
			Record:           &records[i],
			TypeScore:        typeScores[i],
			ModuleScore:      moduleScores[i],
			SemanticScore:    semanticScores[i],
			EnvironmentScore: envScores[i],
			FinalScore:       final,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].FinalScore > candidates[j].FinalScore
	})

	if topK > 0 && len(candidates) > topK {
		candidates = candidates[:topK]
	}

	return candidates, nil
}
