package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/sensor-advisor/backend/internal/api/handlers"
	"github.com/sensor-advisor/backend/internal/cache/redis"
	"github.com/sensor-advisor/backend/internal/catalog"
	"github.com/sensor-advisor/backend/internal/embedding"
	"github.com/sensor-advisor/backend/internal/metrics"
	"github.com/sensor-advisor/backend/internal/middleware/ratelimit"
	"github.com/sensor-advisor/backend/internal/middleware/security"
	"github.com/sensor-advisor/backend/internal/middleware/validation"
	"github.com/sensor-advisor/backend/internal/recommend"
	"github.com/sensor-advisor/backend/internal/storage/sqlite"
	"github.com/sensor-advisor/backend/pkg/config"
	appLogger "github.com/sensor-advisor/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting sensor advisor API server")

	metrics.Init()

	records, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		appLogger.Fatal("Failed to load sensor catalog", zap.Error(err))
	}
	metrics.CatalogSize.Set(float64(len(records)))

	sqliteClient, err := sqlite.NewClient(cfg.SQLite.Path)
	if err != nil {
		appLogger.Fatal("Failed to create SQLite client", zap.Error(err))
	}
	defer sqliteClient.Close()

	if err := sqliteClient.InitSchema(); err != nil {
		appLogger.Fatal("Failed to initialize schema", zap.Error(err))
	}

	var cacheClient *redis.Client
	if cfg.Redis.Enabled {
		cacheClient, err = redis.NewClient(cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
			cacheClient = nil
		} else {
			defer cacheClient.Close()
		}
	}

	encoder := embedding.NewClient(
		cfg.Embedding.APIKey,
		cfg.Embedding.Model,
		cfg.Embedding.TimeoutSec,
		cfg.Embedding.BatchSize,
	)

	appLogger.Info("Embedding sensor catalog...")
	engine, err := recommend.NewEngine(
		context.Background(),
		records,
		encoder,
		cacheClient,
		sqliteClient,
		time.Duration(cfg.Redis.TTLSec)*time.Second,
	)
	if err != nil {
		appLogger.Fatal("Failed to build recommendation engine", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	app.Use(security.HeadersMiddleware(security.HeadersConfig{}))

	limiter := ratelimit.New(ratelimit.Config{
		MaxRequestsPerMinute: 60,
		Logger:               appLogger.GetLogger(),
	})
	defer limiter.Stop()
	app.Use(limiter.Middleware())

	app.Use(validation.Middleware(validation.Config{
		Logger: appLogger.GetLogger(),
	}))

	recommendHandler := handlers.NewRecommendHandler(engine, cfg.Scoring)
	catalogHandler := handlers.NewCatalogHandler(engine)
	historyHandler := handlers.NewHistoryHandler(sqliteClient)

	api := app.Group("/api/v1")

	api.Post("/recommend", recommendHandler.HandleRecommend)
	api.Get("/quick-search", recommendHandler.HandleQuickSearch)
	api.Get("/sensor-types", catalogHandler.HandleSensorTypes)
	api.Get("/status", catalogHandler.HandleStatus)
	api.Get("/history", historyHandler.HandleHistory)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	app.Get("/metrics", metrics.MetricsHandler())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
