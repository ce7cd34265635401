package intent

import "regexp"

// PatternEntry binds a label to the query patterns that imply it, plus an
// optional derived value (a requirement string for environmental contexts,
// a spec string for technical needs). Tables are ordered: the application
// domain table is first-match-wins.
type PatternEntry struct {
	Label    string
	Patterns []*regexp.Regexp
	Derived  string
}

func compile(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}

// directNeedPatterns: a match means the query explicitly asks for that
// sensor category.
var directNeedPatterns = []PatternEntry{
	{Label: "熱顯像", Patterns: compile(`紅外線.*熱顯像`, `熱顯像.*模組`, `熱顯像`, `熱像儀`, `體溫.*感測`, `溫度異常`, `紅外線.*影像`)},
	{Label: "毫米波雷達", Patterns: compile(`毫米波.*人流`, `毫米波.*模組`, `人流.*計算`, `人員.*追蹤`, `動線.*監控`, `人體.*偵測`, `毫米波雷達`)},
	{Label: "氣體感測", Patterns: compile(`氣體.*感測`, `氣體.*偵測`, `氣體.*檢測`, `co2.*感測`, `co₂.*感測`, `voc.*感測`, `空氣品質.*感測`, `臭氧.*感測`, `一氧化碳.*感測`, `氨氣.*感測`, `可燃氣體.*感測`)},
	{Label: "二氧化碳氣體感測", Patterns: compile(`二氧化碳.*感測`, `co2.*感測`, `co2`, `二氧化碳`, `co₂.*濃度`, `co2濃度`, `co2.*檢測`, `co₂(感測器|模組|設備)`)},
	{Label: "溫濕度", Patterns: compile(`溫濕度.*感測`, `溫度.*濕度.*監控`, `溫濕度`, `環境.*溫濕度`, `溫度.*感測`, `濕度.*感測`, `室內.*溫度`)},
	{Label: "環境光感測", Patterns: compile(`光照.*感測`, `照度.*偵測`, `亮度.*監控`, `環境光.*感測`)},
	{Label: "傾斜/振動", Patterns: compile(`傾斜.*偵測`, `振動.*感測`, `角度.*感測`, `晃動.*感測`, `地震.*預警`, `結構.*監控`, `傾斜.*(感測器|模組|設備)?`)},
	{Label: "超音波風速風向", Patterns: compile(`風速.*感測`, `風向.*感測`, `風力.*偵測`, `風速風向`, `氣象.*監控`, `超音波.*風速`)},
}

// environmentalContextPatterns: each match records the context label and
// contributes its derived requirement string.
var environmentalContextPatterns = []PatternEntry{
	{Label: "低溫環境", Patterns: compile(`低溫.*環境`, `冷藏.*倉庫`, `冷凍.*環境`, `極低溫`), Derived: "低溫環境適用"},
	{Label: "高溫環境", Patterns: compile(`高溫.*環境`, `極高溫`), Derived: "高溫環境適用"},
	{Label: "高濕環境", Patterns: compile(`高濕.*環境`, `潮濕.*環境`, `濕度.*較高`), Derived: "抗濕環境"},
	{Label: "工業環境", Patterns: compile(`工廠.*環境`, `工業.*現場`, `生產.*環境`), Derived: "工業級耐用性"},
	{Label: "室內環境", Patterns: compile(`室內.*環境`, `建築.*內部`, `密閉.*空間`), Derived: "室內部署適用"},
	{Label: "戶外環境", Patterns: compile(`戶外.*環境`, `野外.*應用`, `室外.*監控`), Derived: "戶外防護等級"},
}

var technicalSpecPatterns = []PatternEntry{
	{Label: "AI功能", Patterns: compile(`ai`, `人工智慧`, `機器學習`, `行為辨識`, `智能分析`), Derived: "AI擴充相容性"},
	{Label: "即時監控", Patterns: compile(`即時`, `實時`, `連續監測`, `持續監控`), Derived: "連續監控能力"},
	{Label: "無線傳輸", Patterns: compile(`無線`, `wifi`, `藍牙`, `zigbee`, `lora`), Derived: "無線通訊功能"},
	{Label: "低功耗", Patterns: compile(`低功耗`, `省電`, `電池供電`, `節能`), Derived: "低功耗設計"},
	{Label: "高精度", Patterns: compile(`高精度`, `精確`, `準確度`, `精密`), Derived: "高精度測量"},
}

// applicationDomainPatterns is evaluated in priority order; only the first
// matching domain is recorded.
var applicationDomainPatterns = []PatternEntry{
	{Label: "智慧農業", Patterns: compile(`農業`, `溫室`, `種植`, `農作物`, `灌溉`)},
	{Label: "工業監控", Patterns: compile(`工廠`, `生產線`, `機械`, `設備監控`, `預測維護`)},
	{Label: "建築安全", Patterns: compile(`建築`, `結構`, `安全監控`, `火災預警`, `安防`)},
	{Label: "環境監測", Patterns: compile(`環境`, `氣候`, `空氣品質`, `污染監測`, `氣象`)},
	{Label: "智慧城市", Patterns: compile(`城市`, `交通`, `公共設施`, `智慧路燈`, `人流統計`)},
}

// contextExclusionTriggers: a purely contextual temperature or humidity
// mention must not pull in the temperature-humidity category unless it is
// explicitly requested.
var contextExclusionTriggers = map[string]bool{
	"低溫環境": true,
	"高濕環境": true,
	"高溫環境": true,
}

const tempHumidityCategory = "溫濕度"
