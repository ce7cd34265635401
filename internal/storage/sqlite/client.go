package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/sensor-advisor/backend/internal/storage/models"
	"github.com/sensor-advisor/backend/pkg/logger"
)

type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS recommendation_history (
		id TEXT PRIMARY KEY,
		query_text TEXT NOT NULL,
		type_weight REAL NOT NULL,
		module_weight REAL NOT NULL,
		semantic_weight REAL NOT NULL,
		environment_weight REAL NOT NULL,
		threshold REAL NOT NULL,
		top_k INTEGER NOT NULL,
		result_count INTEGER NOT NULL,
		latency_ms INTEGER,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON recommendation_history(created_at);

	CREATE TABLE IF NOT EXISTS recommendation_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recommendation_id TEXT NOT NULL,
		rank INTEGER NOT NULL,
		sensor_name TEXT NOT NULL,
		sensor_type TEXT,
		final_score REAL NOT NULL,
		type_score REAL NOT NULL,
		module_score REAL NOT NULL,
		semantic_score REAL NOT NULL,
		environment_score REAL NOT NULL,
		FOREIGN KEY (recommendation_id) REFERENCES recommendation_history(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_items_recommendation ON recommendation_items(recommendation_id);
	`

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	return nil
}

func (c *Client) InsertRecommendation(record *models.RecommendationRecord, items []models.RecommendationItem) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO recommendation_history
		(id, query_text, type_weight, module_weight, semantic_weight, environment_weight,
		 threshold, top_k, result_count, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.QueryText,
		record.TypeWeight, record.ModuleWeight, record.SemanticWeight, record.EnvironmentWeight,
		record.Threshold, record.TopK, record.ResultCount, record.LatencyMS,
		record.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert recommendation record: %w", err)
	}

	for _, item := range items {
		_, err = tx.Exec(`
			INSERT INTO recommendation_items
			(recommendation_id, rank, sensor_name, sensor_type, final_score,
			 type_score, module_score, semantic_score, environment_score)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ID, item.Rank, item.SensorName, item.SensorType, item.FinalScore,
			item.TypeScore, item.ModuleScore, item.SemanticScore, item.EnvironmentScore,
		)
		if err != nil {
			return fmt.Errorf("failed to insert recommendation item: %w", err)
		}
	}

	return tx.Commit()
}

func (c *Client) ListRecent(limit int) ([]models.RecommendationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := c.db.Query(`
		SELECT id, query_text, type_weight, module_weight, semantic_weight, environment_weight,
		       threshold, top_k, result_count, latency_ms, created_at
		FROM recommendation_history
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendation history: %w", err)
	}
	defer rows.Close()

	var records []models.RecommendationRecord
	for rows.Next() {
		var record models.RecommendationRecord
		var createdAt int64
		err := rows.Scan(
			&record.ID, &record.QueryText,
			&record.TypeWeight, &record.ModuleWeight, &record.SemanticWeight, &record.EnvironmentWeight,
			&record.Threshold, &record.TopK, &record.ResultCount, &record.LatencyMS, &createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation record: %w", err)
		}
		record.CreatedAt = time.Unix(createdAt, 0).UTC()
		records = append(records, record)
	}

	return records, rows.Err()
}
