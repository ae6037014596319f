package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the analytics service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Analytics AnalyticsConfig
	Dataset   DatasetConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AnalyticsConfig carries the engine's tunable parameters. Each maps to an
// explicit argument of one computation; none of them is hidden state.
type AnalyticsConfig struct {
	TopCategories        int
	OutlierPercentile    float64
	QuickResolutionHours float64
	RecurrenceThreshold  float64
	ForecastWindowWeeks  int
	ForecastHorizonWeeks int
	CacheTTLSeconds      int
}

// DatasetConfig controls optional dataset bootstrap at startup.
type DatasetConfig struct {
	CSVPath      string
	AutoGenerate bool
	GenerateSize int
	GenerateSeed int64
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "service-desk-analytics"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Analytics: AnalyticsConfig{
			TopCategories:        getEnvAsInt("ANALYTICS_TOP_CATEGORIES", 5),
			OutlierPercentile:    getEnvAsFloat("ANALYTICS_OUTLIER_PERCENTILE", 95),
			QuickResolutionHours: getEnvAsFloat("ANALYTICS_QUICK_RESOLUTION_HOURS", 24),
			RecurrenceThreshold:  getEnvAsFloat("ANALYTICS_RECURRENCE_THRESHOLD", 0.10),
			ForecastWindowWeeks:  getEnvAsInt("ANALYTICS_FORECAST_WINDOW_WEEKS", 4),
			ForecastHorizonWeeks: getEnvAsInt("ANALYTICS_FORECAST_HORIZON_WEEKS", 4),
			CacheTTLSeconds:      getEnvAsInt("ANALYTICS_CACHE_TTL_SECONDS", 300),
		},
		Dataset: DatasetConfig{
			CSVPath:      getEnv("DATASET_CSV_PATH", ""),
			AutoGenerate: getEnvAsBool("DATASET_AUTO_GENERATE", false),
			GenerateSize: getEnvAsInt("DATASET_GENERATE_SIZE", 2000),
			GenerateSeed: int64(getEnvAsInt("DATASET_GENERATE_SEED", 42)),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns the report cache expiry.
func (a AnalyticsConfig) CacheTTL() time.Duration {
	if a.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(a.CacheTTLSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsFloat(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
