package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDirectNeeds(t *testing.T) {
	t.Run("thermal imaging request", func(t *testing.T) {
		result := Analyze("需要熱顯像感測器偵測人員體溫")
		assert.Equal(t, []string{"熱顯像"}, result.DirectSensorNeeds)
		assert.True(t, result.HasDirectNeed("熱顯像"))
		assert.False(t, result.HasDirectNeed("溫濕度"))
	})

	t.Run("case-insensitive gas request", func(t *testing.T) {
		result := Analyze("CO2感測器安裝在會議室")
		assert.Contains(t, result.DirectSensorNeeds, "氣體感測")
		assert.Contains(t, result.DirectSensorNeeds, "二氧化碳氣體感測")
	})

	t.Run("no explicit request", func(t *testing.T) {
		result := Analyze("倉庫的一般監控需求")
		assert.Empty(t, result.DirectSensorNeeds)
	})
}

func TestAnalyzeEnvironmentalContext(t *testing.T) {
	result := Analyze("低溫環境的冷藏倉庫")
	assert.Equal(t, []string{"低溫環境"}, result.EnvironmentalContext)
	assert.Equal(t, []string{"低溫環境適用"}, result.EnvironmentNeeds)
}

func TestAnalyzeContextExclusion(t *testing.T) {
	t.Run("contextual cold mention excludes temperature-humidity", func(t *testing.T) {
		result := Analyze("低溫環境的冷藏倉庫")
		assert.Equal(t, []string{"溫濕度"}, result.ExcludeKeywords)
	})

	t.Run("explicit request suppresses the exclusion", func(t *testing.T) {
		result := Analyze("溫濕度感測器用於冷藏倉庫")
		assert.Contains(t, result.DirectSensorNeeds, "溫濕度")
		assert.Empty(t, result.ExcludeKeywords)
	})

	t.Run("non-trigger context does not exclude", func(t *testing.T) {
		result := Analyze("工廠環境的監控需求")
		assert.Contains(t, result.EnvironmentalContext, "工業環境")
		assert.Empty(t, result.ExcludeKeywords)
	})
}

func TestAnalyzeTechnicalSpecs(t *testing.T) {
	result := Analyze("無線傳輸即時監控")
	assert.Equal(t, []string{"連續監控能力", "無線通訊功能"}, result.TechnicalSpecs)
}

func TestAnalyzeApplicationDomain(t *testing.T) {
	t.Run("first matching domain wins", func(t *testing.T) {
		// 工廠 matches industrial before 環境 reaches environmental monitoring.
		result := Analyze("工廠的環境監測")
		assert.Equal(t, "工業監控", result.ApplicationDomain)
	})

	t.Run("agriculture outranks environment", func(t *testing.T) {
		result := Analyze("溫室環境的灌溉管理")
		assert.Equal(t, "智慧農業", result.ApplicationDomain)
	})

	t.Run("no domain", func(t *testing.T) {
		result := Analyze("一般用途")
		assert.Empty(t, result.ApplicationDomain)
	})
}

func TestAnalyzeEmptyQuery(t *testing.T) {
	result := Analyze("")

	assert.NotNil(t, result.DirectSensorNeeds)
	assert.NotNil(t, result.EnvironmentalContext)
	assert.NotNil(t, result.ExcludeKeywords)
	assert.NotNil(t, result.EnvironmentNeeds)
	assert.NotNil(t, result.TechnicalSpecs)

	assert.Empty(t, result.DirectSensorNeeds)
	assert.Empty(t, result.ExcludeKeywords)
	assert.Empty(t, result.ApplicationDomain)
}
