package scoring

import (
	"regexp"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/sensor-advisor/backend/internal/catalog"
)

// Profile-tier weights and per-keyword totals for the module model.
const (
	primaryHitWeight   = 1.0
	secondaryHitWeight = 0.2
	contextHitWeight   = 0.05

	primaryTotalWeight   = 0.4
	secondaryTotalWeight = 0.07
	contextTotalWeight   = 0.02

	// fuzzyCutoff is the minimum edit-distance ratio for resolving a module
	// name to a profile when no substring containment exists.
	fuzzyCutoff = 0.6
)

var parentheticalPattern = regexp.MustCompile(`[（(].*?[）)]`)

// ModuleSimilarity scores each record's compatible-module list against the
// query, one score per record in catalog order, each in [0,1]. A module
// name appearing verbatim in the query yields 1.0 outright; otherwise the
// module resolves to an application profile and is scored by keyword tiers.
func ModuleSimilarity(query string, records []catalog.SensorRecord) []float64 {
	queryLower := strings.ToLower(query)
	scores := make([]float64, len(records))

	for i := range records {
		best := 0.0
		for _, module := range records[i].CompatibleModules {
			cleaned := cleanModuleName(module)

			if strings.Contains(queryLower, cleaned) {
				best = 1.0
				break
			}

			profile, ok := resolveProfile(cleaned)
			if !ok {
				continue
			}
			if sim := profileSimilarity(profile, queryLower); sim > best {
				best = sim
			}
		}
		if best > 1.0 {
			best = 1.0
		}
		scores[i] = best
	}

	return scores
}

// cleanModuleName lowercases, strips parenthetical annotations and folds
// the "-detector" suffix variant onto "-detection".
func cleanModuleName(module string) string {
	cleaned := parentheticalPattern.ReplaceAllString(strings.ToLower(module), "")
	return strings.ReplaceAll(cleaned, "偵測器", "偵測")
}

// resolveProfile maps a cleaned module name onto one of the curated
// application profiles: first by substring containment in either
// direction, then by approximate matching against profile keys with a
// cutoff. Ties break toward the earlier profile in table order.
func resolveProfile(cleaned string) (Profile, bool) {
	for _, profile := range moduleProfiles {
		key := strings.ToLower(profile.Key)
		if strings.Contains(key, cleaned) || strings.Contains(cleaned, key) {
			return profile, true
		}
	}

	bestRatio := fuzzyCutoff
	bestIdx := -1
	for i, profile := range moduleProfiles {
		if ratio := editRatio(cleaned, strings.ToLower(profile.Key)); ratio > bestRatio {
			bestRatio = ratio
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return Profile{}, false
	}
	return moduleProfiles[bestIdx], true
}

// editRatio is a similarity in [0,1] from the weighted edit distance with
// substitution cost 2, the same ratio family as classic close-match
// heuristics: 1 - d/(len(a)+len(b)).
func editRatio(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 0
	}
	distance := smetrics.WagnerFischer(a, b, 1, 1, 2)
	return 1.0 - float64(distance)/float64(len(a)+len(b))
}

func profileSimilarity(profile Profile, queryLower string) float64 {
	primary := countContained(profile.Primary, queryLower)
	secondary := countContained(profile.Secondary, queryLower)
	context := countContained(profile.Context, queryLower)

	weight := float64(primary)*primaryHitWeight +
		float64(secondary)*secondaryHitWeight +
		float64(context)*contextHitWeight
	total := float64(len(profile.Primary))*primaryTotalWeight +
		float64(len(profile.Secondary))*secondaryTotalWeight +
		float64(len(profile.Context))*contextTotalWeight
	if total == 0 {
		return 0
	}
	return weight / total
}
