package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecommendDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sensor_advisor_recommend_duration_seconds",
			Help:    "Recommendation processing duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"endpoint"},
	)

	RecommendTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sensor_advisor_recommend_total",
			Help: "Total number of recommendation requests processed",
		},
		[]string{"status"},
	)

	ResultCount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sensor_advisor_result_count",
			Help:    "Number of results returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	FusedScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sensor_advisor_fused_score",
			Help:    "Top fused score per non-empty recommendation",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	CacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sensor_advisor_cache_hits_total",
			Help: "Total cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sensor_advisor_cache_misses_total",
			Help: "Total cache misses",
		},
		[]string{"cache_type"},
	)

	EmbeddingFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sensor_advisor_embedding_failures_total",
			Help: "Total failed embedding-service calls",
		},
	)

	CatalogSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sensor_advisor_catalog_size",
			Help: "Number of sensor records in the loaded catalog",
		},
	)
)

func Init() {
	prometheus.MustRegister(RecommendDuration)
	prometheus.MustRegister(RecommendTotal)
	prometheus.MustRegister(ResultCount)
	prometheus.MustRegister(FusedScore)
	prometheus.MustRegister(CacheHits)
	prometheus.MustRegister(CacheMisses)
	prometheus.MustRegister(EmbeddingFailures)
	prometheus.MustRegister(CatalogSize)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
