package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutEnv(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err, "should load without any env vars")

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, "1.0.0", cfg.API.Version)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Empty(t, cfg.Observability.NewRelic.LicenseKey)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GEOMETRIA_PRIMARY__ENV", "production")
	t.Setenv("GEOMETRIA_SERVER__PORT", "8080")
	t.Setenv("GEOMETRIA_SERVER__RATE_LIMIT__ENABLED", "true")
	t.Setenv("GEOMETRIA_SERVER__RATE_LIMIT__REQUESTS_PER_SECOND", "5")
	t.Setenv("GEOMETRIA_SERVER__RATE_LIMIT__EXPIRES_IN", "1m")
	t.Setenv("GEOMETRIA_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.RateLimit.Enabled)
	assert.Equal(t, 5.0, cfg.Server.RateLimit.RequestsPerSecond)
	assert.Equal(t, time.Minute, cfg.Server.RateLimit.ExpiresIn)
	assert.Equal(t, 40, cfg.Server.RateLimit.Burst, "unset keys keep their default")

	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format, "unset keys keep their default")
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("GEOMETRIA_SERVER__PORT", "http")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("GEOMETRIA_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "invalid logging level")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("GEOMETRIA_SERVER__PORT"))
	assert.Equal(t, "server.cors_allowed_origins", envKey("GEOMETRIA_SERVER__CORS_ALLOWED_ORIGINS"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("GEOMETRIA_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}

func TestObservabilityConfig_GetLogLevel(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	cfg.Environment = "development"
	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())

	cfg.Logging.Level = "error"
	assert.Equal(t, "error", cfg.GetLogLevel())
}

func TestObservabilityConfig_Validate(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	require.NoError(t, cfg.Validate())

	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())

	cfg = DefaultObservabilityConfig()
	cfg.Logging.SlowRequestThreshold = -time.Second
	assert.Error(t, cfg.Validate())
}
