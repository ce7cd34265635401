package scoring

import (
	"strings"

	"github.com/sensor-advisor/backend/internal/catalog"
)

// Fixed increments for each environment cue group.
const (
	lowTempBonus  = 0.3
	humidityBonus = 0.2
	aiBonus       = 0.2
	realtimeBonus = 0.15

	// Records whose minimum operating temperature is at or below this
	// qualify for the low-temperature bonus.
	lowTempQualifyC = -20
)

// EnvironmentSimilarity scores each record's physical attributes against
// environment and technical cues in the query. Additive, capped at 1.0;
// missing or unparsable attributes contribute nothing.
func EnvironmentSimilarity(query string, records []catalog.SensorRecord) []float64 {
	queryLower := strings.ToLower(query)

	wantsLowTemp := countContained(environmentCues["低溫環境"], queryLower) > 0
	wantsHumidityProof := countContained(environmentCues["高濕環境"], queryLower) > 0
	wantsAI := countContained(environmentCues["AI擴充"], queryLower) > 0
	wantsRealtime := countContained(environmentCues["即時監控"], queryLower) > 0

	scores := make([]float64, len(records))
	for i := range records {
		record := &records[i]
		score := 0.0

		if wantsLowTemp {
			if min, _, ok := record.TempRange(); ok && min <= lowTempQualifyC {
				score += lowTempBonus
			}
		}

		if wantsHumidityProof && record.HasIPRating() {
			rating := strings.ToUpper(record.IPRating)
			for _, proof := range humidityProofRatings {
				if strings.Contains(rating, proof) {
					score += humidityBonus
					break
				}
			}
		}

		if wantsAI && record.Features != "" {
			if countContained(aiFeatureKeywords, strings.ToLower(record.Features)) > 0 {
				score += aiBonus
			}
		}

		if wantsRealtime && record.Features != "" {
			if countContained(realtimeFeatureKeywords, strings.ToLower(record.Features)) > 0 {
				score += realtimeBonus
			}
		}

		if score > 1.0 {
			score = 1.0
		}
		scores[i] = score
	}

	return scores
}
