package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

const (
	defaultPort            = "8080"
	defaultLogLevel        = "info"
	defaultSQLitePath      = "data/finance.db"
	defaultStorageKey      = "finance_tracker_data"
	defaultRateLimit       = "300-M"
	defaultShutdownTimeout = 15 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	LogLevel     string

	// Storage
	StorageBackend string
	SQLitePath     string
	DatabaseURL    string
	StorageKey     string
	Timezone       string
	Location       *time.Location

	// HTTP surface
	FrontendBaseURL string
	RateLimit       string
	APIToken        string

	// Optional change notifications over AMQP
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Optional usage analytics
	PosthogAPIKey     string
	PosthogEndpoint   string
	PosthogDistinctID string

	ShutdownTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", defaultPort)
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("LOG_LEVEL", defaultLogLevel)
	viper.SetDefault("STORAGE_BACKEND", BackendMemory)
	viper.SetDefault("SQLITE_PATH", defaultSQLitePath)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("STORAGE_KEY", defaultStorageKey)
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", defaultRateLimit)
	viper.SetDefault("API_TOKEN", "")
	viper.SetDefault("AMQP_URL", "")
	viper.SetDefault("AMQP_EXCHANGE", "finance")
	viper.SetDefault("AMQP_QUEUE", "finance.snapshot")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")
	viper.SetDefault("POSTHOG_DISTINCT_ID", "local")
	viper.SetDefault("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String())

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.LogLevel = strings.ToLower(viper.GetString("LOG_LEVEL"))
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to %s.\n", cfg.LogLevel, defaultLogLevel)
		cfg.LogLevel = defaultLogLevel
	}

	cfg.StorageBackend = strings.ToLower(viper.GetString("STORAGE_BACKEND"))
	cfg.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	switch cfg.StorageBackend {
	case BackendMemory:
		log.Println("Warning: STORAGE_BACKEND is memory. Data is lost when the process exits.")
	case BackendSQLite:
		if cfg.SQLitePath == "" {
			cfg.SQLitePath = defaultSQLitePath
		}
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set. Falling back to memory storage.")
			cfg.StorageBackend = BackendMemory
		}
	default:
		log.Printf("Warning: Invalid value for STORAGE_BACKEND ('%s'). Defaulting to %s.\n", cfg.StorageBackend, BackendMemory)
		cfg.StorageBackend = BackendMemory
	}

	cfg.StorageKey = viper.GetString("STORAGE_KEY")
	if cfg.StorageKey == "" {
		cfg.StorageKey = defaultStorageKey
	}

	cfg.Timezone = viper.GetString("TIMEZONE")
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("Warning: Invalid value for TIMEZONE ('%s'). Defaulting to Local.\n", cfg.Timezone)
		cfg.Timezone = "Local"
		loc = time.Local
	}
	cfg.Location = loc

	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	cfg.APIToken = viper.GetString("API_TOKEN")
	if cfg.APIToken == "" && cfg.IsProduction {
		log.Println("Warning: API_TOKEN not set. The API is open to anyone who can reach it.")
	}

	cfg.AMQPURL = viper.GetString("AMQP_URL")
	cfg.AMQPExchange = viper.GetString("AMQP_EXCHANGE")
	cfg.AMQPQueue = viper.GetString("AMQP_QUEUE")

	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")
	cfg.PosthogEndpoint = viper.GetString("POSTHOG_ENDPOINT")
	cfg.PosthogDistinctID = viper.GetString("POSTHOG_DISTINCT_ID")
	if cfg.PosthogDistinctID == "" {
		cfg.PosthogDistinctID = "local"
	}

	shutdownStr := viper.GetString("SHUTDOWN_TIMEOUT")
	cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr)
	if err != nil || cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
		log.Printf("Warning: Invalid value for SHUTDOWN_TIMEOUT ('%s'). Defaulting to %s.\n", shutdownStr, cfg.ShutdownTimeout.String())
	}

	return cfg, nil
}
