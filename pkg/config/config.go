package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Embedding EmbeddingConfig
	Scoring   ScoringConfig
	Redis     RedisConfig
	SQLite    SQLiteConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  int
	WriteTimeout int
	BodyLimit    int
}

type CatalogConfig struct {
	Path string
}

type EmbeddingConfig struct {
	APIKey     string
	Model      string
	Dimension  int
	TimeoutSec int
	BatchSize  int
}

// ScoringConfig holds the default fusion parameters. Per-request values
// override these; the weights are not required to sum to 1.
type ScoringConfig struct {
	TypeWeight        float64
	ModuleWeight      float64
	SemanticWeight    float64
	EnvironmentWeight float64
	Threshold         float64
	TopK              int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTLSec   int
}

type SQLiteConfig struct {
	Path string
}

type LoggingConfig struct {
	Level      string
	Format     string
	OutputPath string
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/sensor-advisor")

	viper.SetEnvPrefix("SENSOR_ADVISOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8001)
	viper.SetDefault("server.readTimeout", 30)
	viper.SetDefault("server.writeTimeout", 30)
	viper.SetDefault("server.bodyLimit", 1048576)

	viper.SetDefault("catalog.path", "./data/sensors.csv")

	viper.SetDefault("embedding.model", "text-embedding-3-small")
	viper.SetDefault("embedding.dimension", 1536)
	viper.SetDefault("embedding.timeoutSec", 15)
	viper.SetDefault("embedding.batchSize", 100)

	viper.SetDefault("scoring.typeWeight", 0.4)
	viper.SetDefault("scoring.moduleWeight", 0.3)
	viper.SetDefault("scoring.semanticWeight", 0.25)
	viper.SetDefault("scoring.environmentWeight", 0.05)
	viper.SetDefault("scoring.threshold", 0.5)
	viper.SetDefault("scoring.topK", 5)

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.ttlSec", 3600)

	viper.SetDefault("sqlite.path", "./data/advisor.db")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.outputPath", "stdout")
}
