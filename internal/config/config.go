// Package config loads the application's configuration from the
// environment.
//
// Variables are read with the EXTRACKER_ prefix (optionally from a `.env`
// file via godotenv's autoload), mapped into structured Go types with
// koanf, and validated so the process fails fast on missing values.
// Nested fields use "." as the delimiter, e.g.
// EXTRACKER_DATABASE.URL -> Config.Database.URL.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// envPrefix scopes which environment variables belong to this service.
const envPrefix = "EXTRACKER_"

// DefaultPort is used when no listening port is configured.
const DefaultPort = "3000"

// Config is the root configuration object.
//
// Observability is a pointer because the whole block is optional; when it
// is absent, defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch behavior (console logging, SQL tracing).
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime. Timeouts are
// whole seconds. Port is optional and defaults to DefaultPort.
type ServerConfig struct {
	Port               string   `koanf:"port"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains the store connection string and pool tuning.
// URL is a postgres:// DSN; pool knobs are optional and fall back to the
// driver defaults when zero.
type DatabaseConfig struct {
	URL             string `koanf:"url" validate:"required"`
	MaxConns        int    `koanf:"max_conns"`
	MinConns        int    `koanf:"min_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time"`
}

// RedisConfig contains Redis connection details. Address is "host:port".
// The whole block is optional: without an address the rate limiter is
// disabled and the service runs without Redis.
type RedisConfig struct {
	Address string `koanf:"address"`

	// RateLimitPerMinute caps requests per client IP per minute when Redis
	// is configured. Zero disables enforcement.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`
}

// Load reads, unmarshals and validates the configuration.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultPort
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are forced from the primary config so
	// telemetry naming stays consistent regardless of what was set.
	cfg.Observability.ServiceName = "exercise-tracker"
	cfg.Observability.Environment = cfg.Primary.Env

	if err := cfg.Observability.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid observability config")
	}

	return cfg, nil
}
