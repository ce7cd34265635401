// Package intent turns a free-text sensor query into a structured bag of
// signals: explicitly requested sensor categories, environmental context,
// derived exclusions, technical-spec needs and an application domain.
package intent

import "regexp"

// Result is ephemeral, one per query. Slices are never nil.
type Result struct {
	DirectSensorNeeds    []string `json:"direct_sensor_needs"`
	EnvironmentalContext []string `json:"environmental_context"`
	ExcludeKeywords      []string `json:"exclude_keywords"`
	EnvironmentNeeds     []string `json:"environment_needs"`
	TechnicalSpecs       []string `json:"technical_specs"`
	ApplicationDomain    string   `json:"application_domain,omitempty"`
}

// HasDirectNeed reports whether the query explicitly asked for the given
// sensor category.
func (r *Result) HasDirectNeed(category string) bool {
	for _, need := range r.DirectSensorNeeds {
		if need == category {
			return true
		}
	}
	return false
}

func anyMatch(patterns []*regexp.Regexp, query string) bool {
	for _, p := range patterns {
		if p.MatchString(query) {
			return true
		}
	}
	return false
}

// Analyze applies the five pattern tables against the raw query. It is a
// pure function; matching is case-insensitive and unanchored.
func Analyze(query string) Result {
	result := Result{
		DirectSensorNeeds:    []string{},
		EnvironmentalContext: []string{},
		ExcludeKeywords:      []string{},
		EnvironmentNeeds:     []string{},
		TechnicalSpecs:       []string{},
	}

	for _, entry := range directNeedPatterns {
		if anyMatch(entry.Patterns, query) {
			result.DirectSensorNeeds = append(result.DirectSensorNeeds, entry.Label)
		}
	}

	for _, entry := range environmentalContextPatterns {
		if anyMatch(entry.Patterns, query) {
			result.EnvironmentalContext = append(result.EnvironmentalContext, entry.Label)
			result.EnvironmentNeeds = append(result.EnvironmentNeeds, entry.Derived)
		}
	}

	for _, entry := range technicalSpecPatterns {
		if anyMatch(entry.Patterns, query) {
			result.TechnicalSpecs = append(result.TechnicalSpecs, entry.Derived)
		}
	}

	for _, entry := range applicationDomainPatterns {
		if anyMatch(entry.Patterns, query) {
			result.ApplicationDomain = entry.Label
			break
		}
	}

	for _, ctx := range result.EnvironmentalContext {
		if contextExclusionTriggers[ctx] && !result.HasDirectNeed(tempHumidityCategory) {
			result.ExcludeKeywords = append(result.ExcludeKeywords, tempHumidityCategory)
			break
		}
	}

	return result
}
