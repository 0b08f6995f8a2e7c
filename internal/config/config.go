package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port                string        `env:"PORT" envDefault:"8080"`
	DatabaseURL         string        `env:"DATABASE_URL,required,notEmpty"`
	RedisURL            string        `env:"REDIS_URL"`
	SubscribeRateLimit  int           `env:"SUBSCRIBE_RATE_LIMIT" envDefault:"5"`
	SubscribeRateWindow time.Duration `env:"SUBSCRIBE_RATE_WINDOW" envDefault:"1m"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables. A .env file in the
// working directory is applied first when present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SubscribeRateWindow <= 0 {
		return nil, fmt.Errorf("SUBSCRIBE_RATE_WINDOW must be positive, got %s", cfg.SubscribeRateWindow)
	}

	return &cfg, nil
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
