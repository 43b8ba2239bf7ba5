package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/deppfellow/adder/internal/config"
)

func TestNewLoggerServiceWithoutLicenseKey(t *testing.T) {
	ls := NewLoggerService(config.DefaultObservabilityConfig())

	assert.Nil(t, ls.GetApplication())
	// Shutdown without an agent is a no-op.
	ls.Shutdown()
}

func TestNilLoggerServiceHasNoApplication(t *testing.T) {
	var ls *LoggerService
	assert.Nil(t, ls.GetApplication())
}

func TestNewLoggerWithServiceLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLoggerWithService(cfg, nil)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewLoggerDefaultsByEnvironment(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, NewLogger("", true).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, NewLogger("", false).GetLevel())
	assert.Equal(t, zerolog.ErrorLevel, NewLogger("error", false).GetLevel())
}

func TestWithTraceContextNilTransaction(t *testing.T) {
	base := zerolog.Nop()
	assert.Equal(t, base, WithTraceContext(base, nil))
}
