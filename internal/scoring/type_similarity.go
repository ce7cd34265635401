// Package scoring implements the three rule-based similarity models. All
// scorers are total functions over arbitrary catalog rows: malformed or
// missing attributes contribute zero, never an error.
package scoring

import (
	"strings"

	"github.com/sensor-advisor/backend/internal/catalog"
	"github.com/sensor-advisor/backend/internal/intent"
)

// Score an explicit category request receives, dominating keyword
// heuristics without reaching a perfect match.
const directNeedScore = 0.9

// Tier-dependent normalization constants. Larger curated keyword lists get
// steeper divisors so that categories saturate at comparable match ratios
// regardless of vocabulary size. Empirically calibrated; do not re-derive.
const (
	largeListMin = 12
	mediumListMin = 5

	largePrimaryDivisor  = 2.5
	mediumPrimaryDivisor = 1.7
	smallPrimaryDivisor  = 1.4

	largeSecondaryDivisor = 1.3
	smallSecondaryDivisor = 1.0

	primaryMultiplier   = 4.0
	secondaryMultiplier = 0.3
	secondaryCap        = 0.2
)

// TypeSimilarity scores each record's sensor-type match to the query, one
// score per record in catalog order, each in [0,1].
func TypeSimilarity(query string, it intent.Result, records []catalog.SensorRecord) []float64 {
	queryLower := strings.ToLower(query)
	scores := make([]float64, len(records))

	for i := range records {
		scores[i] = typeScore(queryLower, it, strings.TrimSpace(records[i].Type))
	}

	return scores
}

func typeScore(queryLower string, it intent.Result, sensorType string) float64 {
	for _, excluded := range it.ExcludeKeywords {
		if strings.Contains(sensorType, excluded) {
			return 0
		}
	}

	if it.HasDirectNeed(sensorType) {
		return directNeedScore
	}

	kws, ok := sensorTypeKeywords[sensorType]
	if !ok {
		return 0
	}

	primaryMatches := countContained(kws.Primary, queryLower)
	if primaryMatches == 0 {
		return 0
	}
	secondaryMatches := countContained(kws.Secondary, queryLower)

	var primaryDiv, secondaryDiv float64
	switch {
	case len(kws.Primary) > largeListMin:
		primaryDiv, secondaryDiv = largePrimaryDivisor, largeSecondaryDivisor
	case len(kws.Primary) > mediumListMin:
		primaryDiv, secondaryDiv = mediumPrimaryDivisor, largeSecondaryDivisor
	default:
		primaryDiv, secondaryDiv = smallPrimaryDivisor, smallSecondaryDivisor
	}

	primaryScore := float64(primaryMatches) / (float64(len(kws.Primary)) / primaryDiv) * primaryMultiplier
	if primaryScore > 1.0 {
		primaryScore = 1.0
	}

	secondaryScore := float64(secondaryMatches) / (float64(len(kws.Secondary)) / secondaryDiv) * secondaryMultiplier
	if secondaryScore > secondaryCap {
		secondaryScore = secondaryCap
	}

	score := primaryScore + secondaryScore
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func countContained(keywords []string, text string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			count++
		}
	}
	return count
}
