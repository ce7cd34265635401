package models

import "time"

// RecommendationRecord is one row of recommendation history: the request
// parameters and the outcome of a single ranked query.
type RecommendationRecord struct {
	ID                string
	QueryText         string
	TypeWeight        float64
	ModuleWeight      float64
	SemanticWeight    float64
	EnvironmentWeight float64
	Threshold         float64
	TopK              int
	ResultCount       int
	LatencyMS         int
	CreatedAt         time.Time
}

// RecommendationItem is one ranked result attached to a history row, kept
// for explainability audits.
type RecommendationItem struct {
	ID               int64
	RecommendationID string
	Rank             int
	SensorName       string
	SensorType       string
	FinalScore       float64
	TypeScore        float64
	ModuleScore      float64
	SemanticScore    float64
	EnvironmentScore float64
}
