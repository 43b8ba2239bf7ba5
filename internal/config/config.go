// Package config loads the service configuration.
//
// Values come from, in increasing priority:
//   - built-in defaults (so the service starts with no configuration at all)
//   - environment variables prefixed with ADDER_, optionally from a `.env` file
//
// Nested keys use "." or "__" as separator, e.g. ADDER_SERVER.PORT or
// ADDER_SERVER__PORT both map to Config.Server.Port.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads `.env` into the process environment before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every environment variable must carry to be read.
const EnvPrefix = "ADDER_"

// ServiceName identifies the service in logs and New Relic.
const ServiceName = "adder"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Read, write and idle timeouts are whole seconds; ShutdownTimeout is a
// duration string such as "10s".
type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required"`
	ReadTimeout        int           `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int           `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int           `koanf:"idle_timeout" validate:"required,min=1"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"min=1s"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// defaults are loaded before the environment so every field has a value.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":                                         "local",
		"server.port":                                         "8080",
		"server.read_timeout":                                 30,
		"server.write_timeout":                                30,
		"server.idle_timeout":                                 60,
		"server.shutdown_timeout":                             "10s",
		"server.cors_allowed_origins":                         []string{"*"},
		"observability.logging.level":                         "info",
		"observability.logging.format":                        "console",
		"observability.new_relic.license_key":                 "",
		"observability.new_relic.app_log_forwarding_enabled":  true,
		"observability.new_relic.distributed_tracing_enabled": true,
		"observability.new_relic.debug_logging":               false,
	}
}

// envKey maps ADDER_SERVER__PORT (or ADDER_SERVER.PORT) to "server.port".
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig builds the configuration from defaults and the environment,
// validates it and fills in observability settings.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("could not load default config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
