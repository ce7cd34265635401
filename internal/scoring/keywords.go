package scoring

// Curated keyword tables. These are tuned configuration: list sizes feed
// the tier-dependent normalization divisors, so entries are kept exactly
// as calibrated even where an entry can never match a lower-cased query.

// TypeKeywords holds the per-category keyword tiers for type similarity.
type TypeKeywords struct {
	Primary   []string
	Secondary []string
}

var sensorTypeKeywords = map[string]TypeKeywords{
	"熱顯像": {
		Primary:   []string{"熱顯像", "紅外線", "熱源", "火源", "體溫", "溫度影像", "人員追蹤", "熱成像"},
		Secondary: []string{"無接觸", "監控"},
	},
	"溫濕度": {
		Primary:   []string{"溫度", "濕度", "溫濕度", "環境溫度", "環境濕度", "空氣濕潤度"},
		Secondary: []string{"監控", "控制", "農業", "環境", "溫室", "機房", "倉儲"},
	},
	"氣體感測": {
		Primary: []string{"氨氣", "氣體", "空氣品質", "一氧化碳", "二氧化碳", "co2", "co₂", "甲烷", "VOC", "氣體檢測", "氣體洩漏",
			"可燃氣體", "空氣品質監控", "室內空氣", "通風", "空氣監測", "空氣檢測", "排風", "氣體濃度"},
		Secondary: []string{"工業監控", "氣體洩漏"},
	},
	"毫米波雷達": {
		Primary:   []string{"毫米波", "雷達", "人流", "人數統計", "動線追蹤"},
		Secondary: []string{"人員偵測", "流量統計"},
	},
	"超音波風速風向": {
		Primary:   []string{"風速", "風向", "氣象", "風力"},
		Secondary: []string{"氣象", "氣候"},
	},
	"環境光感測": {
		Primary:   []string{"光照", "照度", "亮度", "環境光", "光度", "光照度", "日照強度"},
		Secondary: []string{"農業", "日照", "光源"},
	},
	"傾斜/振動": {
		Primary:   []string{"傾斜", "振動", "角度", "穩定性監測", "機械振動", "結構監測"},
		Secondary: []string{"機械監測", "設備監控"},
	},
	"二氧化碳氣體感測": {
		Primary: []string{"CO2", "CO₂", "二氧化碳", "空氣品質", "空氣監測", "co2", "co₂", "二氧化碳濃度",
			"CO2濃度", "ppm", "火災"},
		Secondary: []string{"通風", "空調", "室內環境"},
	},
}

// Profile is a curated application category with tiered keyword sets used
// to score a compatible-module name against free text.
type Profile struct {
	Key       string
	Primary   []string
	Secondary []string
	Context   []string
}

// moduleProfiles is ordered: approximate matching breaks ties toward the
// earlier profile.
var moduleProfiles = []Profile{
	{
		Key:       "溫濕度監控偵測",
		Primary:   []string{"溫度", "濕度", "溫濕度", "環境溫度", "環境濕度"},
		Secondary: []string{"農業", "氣候", "環境監控"},
		Context:   []string{"持續監測", "記錄", "感測"},
	},
	{
		Key:       "火災預警偵測",
		Primary:   []string{"火災", "火源", "熱源", "安全監控", "預警", "熱顯像", "co2", "CO₂", "二氧化碳", "濃度"},
		Secondary: []string{"建築安全", "監控系統", "紅外線", "溫度監測"},
		Context:   []string{"即時", "自動", "警報", "偵測"},
	},
	{
		Key:       "火災預警偵測(wifi)",
		Primary:   []string{"火災", "無線", "wifi", "遠端監控", "熱顯像", "co2", "CO₂", "二氧化碳", "濃度"},
		Secondary: []string{"物聯網", "iot", "雲端", "無線傳輸"},
		Context:   []string{"即時傳輸", "遠端", "無線通訊"},
	},
	{
		Key:       "體溫偵測",
		Primary:   []string{"體溫", "紅外線感測", "熱顯像", "額溫偵測"},
		Secondary: []string{"發燒", "體表溫度", "醫療偵測", "健康監控"},
		Context:   []string{"即時傳輸", "遠端", "不接觸"},
	},
	{
		Key:       "氣候光照偵測",
		Primary:   []string{"光照", "照度", "環境光", "氣候", "co2", "CO₂", "二氧化碳"},
		Secondary: []string{"農業", "植物生長", "溫室", "環境監測"},
		Context:   []string{"光線感測", "氣候監控", "環境參數"},
	},
	{
		Key:       "土壤氣候整合偵測",
		Primary:   []string{"土壤", "氣候", "農業", "種植", "co2", "CO₂", "光照", "溫濕度"},
		Secondary: []string{"智慧農業", "精準農業", "植物生長"},
		Context:   []string{"整合監測", "多參數", "農業應用"},
	},
	{
		Key:       "無CO2土壤氣候偵測",
		Primary:   []string{"土壤", "氣候", "光照", "環境監測", "無co2"},
		Secondary: []string{"簡化監測", "基礎農業", "環境感測"},
		Context:   []string{"基本參數", "成本優化"},
	},
	{
		Key: "人流計算與氨氣感測",
		Primary: []string{"人流", "人數統計", "氨氣", "毫米波", "雷達", "空氣品質", "空氣監控", "空氣異味",
			"有害氣體", "空氣", "人潮", "排風", "換氣"},
		Secondary: []string{"空氣品質", "人員統計", "通風", "排風系統", "除臭", "空間使用"},
		Context:   []string{"雷達偵測", "氣體監測", "雙重功能"},
	},
	{
		Key:       "森林應用監測",
		Primary:   []string{"森林", "風力", "風向", "風速", "戶外監測"},
		Secondary: []string{"氣象", "環境監測", "野外應用"},
		Context:   []string{"超音波", "氣象參數", "戶外環境"},
	},
	{
		Key:       "傾斜偵測",
		Primary:   []string{"傾斜", "角度", "穩定性", "結構監測", "振動"},
		Secondary: []string{"建築安全", "結構健康", "設備監控"},
		Context:   []string{"雙軸", "精密測量", "安全監控"},
	},
	{
		Key:       "馬達偵測",
		Primary:   []string{"馬達", "振動", "設備監控", "機械", "傾斜"},
		Secondary: []string{"工業設備", "預測維護", "機械健康"},
		Context:   []string{"設備診斷", "振動分析", "預防保養"},
	},
}

// environmentCues are the query-side keyword sets for the environment
// heuristic. Personnel-tracking cues are listed for completeness; their
// signal is already carried by the radar type and module keywords.
var environmentCues = map[string][]string{
	"低溫環境": {"低溫", "冷藏", "冷凍", "極低溫"},
	"高濕環境": {"高濕", "潮濕", "抗濕"},
	"AI擴充":  {"AI", "人工智慧", "機器學習", "行為辨識"},
	"即時監控": {"即時", "實時", "連續監測"},
	"人員追蹤": {"人員", "移動軌跡", "追蹤", "行為"},
}

var humidityProofRatings = []string{"IP65", "IP66", "IPX7"}

var aiFeatureKeywords = []string{"分析", "智能", "擴充", "平台"}

var realtimeFeatureKeywords = []string{"即時", "連續", "持續"}
