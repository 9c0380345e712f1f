package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	vars := map[string]string{
		"RECIPES_PRIMARY.ENV":                 "local",
		"RECIPES_SERVER.PORT":                 "8080",
		"RECIPES_SERVER.READ_TIMEOUT":         "30",
		"RECIPES_SERVER.WRITE_TIMEOUT":        "30",
		"RECIPES_SERVER.IDLE_TIMEOUT":         "60",
		"RECIPES_SERVER.CORS_ALLOWED_ORIGINS": "*",
		"RECIPES_DATABASE.HOST":               "localhost",
		"RECIPES_DATABASE.PORT":               "5432",
		"RECIPES_DATABASE.USER":               "postgres",
		"RECIPES_DATABASE.PASSWORD":           "postgres",
		"RECIPES_DATABASE.NAME":               "recipes",
		"RECIPES_DATABASE.SSL_MODE":           "disable",
		"RECIPES_DATABASE.MAX_OPEN_CONNS":     "10",
		"RECIPES_DATABASE.MAX_IDLE_CONNS":     "2",
		"RECIPES_DATABASE.CONN_MAX_LIFETIME":  "300",
		"RECIPES_DATABASE.CONN_MAX_IDLE_TIME": "60",
	}
	for key, value := range vars {
		t.Setenv(key, value)
	}
}

func TestLoadConfig(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Server.AllowsAnyOrigin())
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Empty(t, cfg.Redis.Address)
	assert.Zero(t, cfg.Server.RateLimitRequests)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
}

func TestLoadConfig_CommaSeparatedOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RECIPES_SERVER.CORS_ALLOWED_ORIGINS", "https://a.dev, https://b.dev")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Server.AllowsAnyOrigin())
}

func TestLoadConfig_RateLimitWindowDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RECIPES_SERVER.RATE_LIMIT_REQUESTS", "20")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Server.RateLimitRequests)
	assert.Equal(t, time.Minute, cfg.Server.RateLimitWindow)
}

func TestLoadConfig_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RECIPES_DATABASE.HOST", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Level = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowQueryThreshold = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.ServiceName = ""
	assert.Error(t, cfg.Validate())
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Logging.Level = "warn"
	assert.Equal(t, "warn", cfg.GetLogLevel())
}

func TestHealthChecksConfig_HasCheck(t *testing.T) {
	checks := HealthChecksConfig{Enabled: true, Checks: []string{"database"}}
	assert.True(t, checks.HasCheck("database"))
	assert.False(t, checks.HasCheck("redis"))

	checks.Enabled = false
	assert.False(t, checks.HasCheck("database"))
}
