// Package config manages environment variables.
//
// It reads variables (optionally from a `.env` file), loads them into
// structured Go types, and validates them so they can be reused across
// the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config.
//   - Validate required values so the app fails fast on bad config.
//   - Provide sane defaults for everything, the API runs with no env at all.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file, if present, into the
	// process env before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read with the prefix GEOMETRIA_. The prefix is removed,
	the rest is lowercased and a double underscore marks nesting:

	  GEOMETRIA_SERVER__PORT                       -> server.port
	  GEOMETRIA_OBSERVABILITY__LOGGING__LEVEL      -> observability.logging.level
	  GEOMETRIA_SERVER__CORS_ALLOWED_ORIGINS=a,b   -> server.cors_allowed_origins
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "GEOMETRIA_"

// Config is the root configuration object for the application.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	API           APIConfig            `koanf:"api" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string          `koanf:"port" validate:"required,numeric"`
	ReadTimeout        int             `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int             `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int             `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string        `koanf:"cors_allowed_origins" validate:"required,min=1"`
	RateLimit          RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig controls the per-client rate limiter. It is off by default.
type RateLimitConfig struct {
	Enabled           bool          `koanf:"enabled"`
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"required_if=Enabled true,gte=0"`
	Burst             int           `koanf:"burst" validate:"gte=0"`
	ExpiresIn         time.Duration `koanf:"expires_in" validate:"gte=0"`
}

// APIConfig holds the metadata published at `/` and in the OpenAPI document.
type APIConfig struct {
	Name         string `koanf:"name" validate:"required"`
	Version      string `koanf:"version" validate:"required"`
	Description  string `koanf:"description"`
	ContactName  string `koanf:"contact_name"`
	ContactEmail string `koanf:"contact_email" validate:"omitempty,email"`
}

// DefaultConfig returns the configuration used when no env var overrides it.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 20,
				Burst:             40,
				ExpiresIn:         3 * time.Minute,
			},
		},
		API: APIConfig{
			Name:         "API de Cálculo de Áreas y Volúmenes",
			Version:      "1.0.0",
			Description:  "API para calcular áreas, perímetros y volúmenes de figuras geométricas",
			ContactName:  "Soporte API",
			ContactEmail: "soporte@calculadora-geometrica.com",
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey maps GEOMETRIA_SERVER__PORT to server.port.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// LoadConfig loads configuration from environment variables on top of
// DefaultConfig, validates it and fills the observability block.
//
// Flow:
//   - Load env vars with prefix GEOMETRIA_
//   - Unmarshal into a Config pre-populated with defaults
//   - Validate struct tags
//   - Set default observability if missing, then force service name + environment
//   - Validate observability config
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := DefaultConfig()

	// Unmarshal only overwrites keys that are present, defaults survive.
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
