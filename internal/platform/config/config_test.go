package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.BackendMemory, cfg.StorageBackend)
	assert.Equal(t, "finance_tracker_data", cfg.StorageKey)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, "local", cfg.PosthogDistinctID)
	assert.Equal(t, "finance", cfg.AMQPExchange)
	assert.Equal(t, "finance.snapshot", cfg.AMQPQueue)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	assert.NotNil(t, cfg.Location)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/ft.db")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("API_TOKEN", "s3cret")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.BackendSQLite, cfg.StorageBackend)
	assert.Equal(t, "/tmp/ft.db", cfg.SQLitePath)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, "s3cret", cfg.APIToken)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("PGSQL_URL", "")
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("RATE_LIMIT", "lots")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.BackendMemory, cfg.StorageBackend, "postgres without a URL falls back")
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}
