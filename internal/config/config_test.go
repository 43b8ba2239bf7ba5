package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "local", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADDER_PRIMARY__ENV", "production")
	t.Setenv("ADDER_SERVER__PORT", "9090")
	t.Setenv("ADDER_SERVER.SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("ADDER_OBSERVABILITY__LOGGING__LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.True(t, cfg.Observability.IsProduction())
}

func TestLoadConfigRejectsBadLevel(t *testing.T) {
	t.Setenv("ADDER_OBSERVABILITY__LOGGING__LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestGetLogLevelFallsBackByEnvironment(t *testing.T) {
	c := DefaultObservabilityConfig()
	c.Logging.Level = ""

	c.Environment = "production"
	assert.Equal(t, "info", c.GetLogLevel())

	c.Environment = "development"
	assert.Equal(t, "debug", c.GetLogLevel())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.port", envKey("ADDER_SERVER__PORT"))
	assert.Equal(t, "server.port", envKey("ADDER_SERVER.PORT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("ADDER_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}
