package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensor-advisor/backend/internal/storage/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.InitSchema())
	return client
}

func sampleRecord(id, query string, createdAt time.Time) *models.RecommendationRecord {
	return &models.RecommendationRecord{
		ID:                id,
		QueryText:         query,
		TypeWeight:        0.4,
		ModuleWeight:      0.3,
		SemanticWeight:    0.25,
		EnvironmentWeight: 0.05,
		Threshold:         0.5,
		TopK:              5,
		ResultCount:       1,
		LatencyMS:         42,
		CreatedAt:         createdAt,
	}
}

func TestInsertAndListRecent(t *testing.T) {
	client := newTestClient(t)

	now := time.Now().Truncate(time.Second)
	record := sampleRecord("req-1", "需要熱顯像感測器", now)
	items := []models.RecommendationItem{
		{Rank: 1, SensorName: "TI-300", SensorType: "熱顯像", FinalScore: 0.91, TypeScore: 0.9, SemanticScore: 0.8},
	}

	require.NoError(t, client.InsertRecommendation(record, items))

	got, err := client.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "req-1", got[0].ID)
	assert.Equal(t, "需要熱顯像感測器", got[0].QueryText)
	assert.Equal(t, 0.4, got[0].TypeWeight)
	assert.Equal(t, 5, got[0].TopK)
	assert.Equal(t, 1, got[0].ResultCount)
	assert.Equal(t, 42, got[0].LatencyMS)
	assert.Equal(t, now.Unix(), got[0].CreatedAt.Unix())
}

func TestListRecentOrderAndLimit(t *testing.T) {
	client := newTestClient(t)

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"req-1", "req-2", "req-3"} {
		record := sampleRecord(id, "query", base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, client.InsertRecommendation(record, nil))
	}

	got, err := client.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "req-3", got[0].ID)
	assert.Equal(t, "req-2", got[1].ID)
}

func TestListRecentDefaultLimit(t *testing.T) {
	client := newTestClient(t)

	got, err := client.ListRecent(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInsertDuplicateIDFails(t *testing.T) {
	client := newTestClient(t)

	record := sampleRecord("req-1", "query", time.Now())
	require.NoError(t, client.InsertRecommendation(record, nil))
	assert.Error(t, client.InsertRecommendation(record, nil))
}
