package catalog

import (
	"regexp"
	"strings"
)

// ParseModules turns the raw braced/quoted module-list column into a clean
// ordered list. It never fails: any unparsable input yields an empty list.
//
//	{溫濕度監控偵測, "火災預警偵測", '傾斜偵測'} → [溫濕度監控偵測 火災預警偵測 傾斜偵測]
func ParseModules(raw string) []string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.Trim(cleaned, "{}[]")
	cleaned = strings.NewReplacer(`"`, "", "'", "").Replace(cleaned)
	if cleaned == "" {
		return []string{}
	}

	parts := strings.Split(cleaned, ",")
	modules := make([]string, 0, len(parts))
	for _, part := range parts {
		if m := strings.TrimSpace(part); m != "" {
			modules = append(modules, m)
		}
	}
	return modules
}

// applicationPatterns maps an application-domain tag to the feature-text
// patterns that imply it. Matched tags are appended twice to the search
// document to bias the embedding toward the domain.
var applicationPatterns = []struct {
	label    string
	patterns []*regexp.Regexp
}{
	{"室內監控", compileAll(`室內`, `建築`, `辦公`, `機房`)},
	{"安全監控", compileAll(`監控`, `安全`, `預警`, `警報`)},
	{"熱源偵測", compileAll(`熱源`, `熱顯像`, `紅外線`, `溫度`)},
	{"人員偵測", compileAll(`人員`, `人像`, `人流`, `體溫`)},
	{"火災預防", compileAll(`火災`, `火源`, `煙霧`, `預警`)},
	{"環境監測", compileAll(`環境`, `氣候`, `空氣`, `品質`)},
	{"工業應用", compileAll(`工廠`, `工業`, `機械`, `設備`)},
	{"農業應用", compileAll(`農業`, `溫室`, `土壤`, `種植`)},
	{"戶外應用", compileAll(`戶外`, `森林`, `野外`, `氣象`)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// ExtractApplicationKeywords scans feature text against the fixed domain
// table and returns each matched label twice.
func ExtractApplicationKeywords(features string) []string {
	var keywords []string
	for _, app := range applicationPatterns {
		for _, p := range app.patterns {
			if p.MatchString(features) {
				keywords = append(keywords, app.label, app.label)
				break
			}
		}
	}
	return keywords
}

// ExtractEnvironmentTags derives suitability tags from the record's IP
// rating, operating temperature range and power consumption. Unparsable
// attributes contribute nothing.
func ExtractEnvironmentTags(r *SensorRecord) []string {
	var tags []string

	if r.HasIPRating() {
		rating := strings.ToUpper(r.IPRating)
		switch {
		case strings.Contains(rating, "IP65") || strings.Contains(rating, "IP66"):
			tags = append(tags, "防塵防水", "室外適用", "惡劣環境", "防塵防水", "室外適用", "惡劣環境")
		case strings.Contains(rating, "IPX7") || strings.Contains(rating, "IPX8"):
			tags = append(tags, "防水", "戶外可用")
		default:
			tags = append(tags, "環境保護")
		}
	}

	if min, max, ok := r.TempRange(); ok {
		if min <= -20 {
			tags = append(tags, "極低溫", "嚴寒環境")
		}
		if max >= 85 {
			tags = append(tags, "高溫", "工業環境")
		}
		if min >= 0 && max <= 50 {
			tags = append(tags, "室內環境", "一般環境")
		} else {
			tags = append(tags, "寬溫範圍", "惡劣環境")
		}
	}

	if r.PowerConsumption != nil {
		switch power := *r.PowerConsumption; {
		case power <= 0.01:
			tags = append(tags, "超低功耗", "電池供電")
		case power <= 0.1:
			tags = append(tags, "低功耗", "節能")
		}
	}

	return tags
}

// BuildSearchText assembles the enriched document used by the embedding
// encoder: name ×5, type ×4, each module ×4, features, then extracted
// application and environment tags. Rule-based scoring never reads it.
func BuildSearchText(r *SensorRecord) string {
	var parts []string

	if r.Name != "" {
		for i := 0; i < 5; i++ {
			parts = append(parts, r.Name)
		}
	}
	if r.Type != "" {
		for i := 0; i < 4; i++ {
			parts = append(parts, r.Type)
		}
	}
	for _, module := range r.CompatibleModules {
		for i := 0; i < 4; i++ {
			parts = append(parts, module)
		}
	}
	if r.Features != "" {
		parts = append(parts, r.Features)
		parts = append(parts, ExtractApplicationKeywords(r.Features)...)
	}
	parts = append(parts, ExtractEnvironmentTags(r)...)

	return strings.Join(parts, " ")
}
