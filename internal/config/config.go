// Package config loads adventurer settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"

	SpellSourceContent  = "content"
	SpellSourceDND5eAPI = "dnd5eapi"
)

// Config holds all configuration for the application
type Config struct {
	// Store selects the character repository: memory, redis or sqlite
	Store    string `env:"STORE" envDefault:"memory"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Redis     RedisConfig
	SQLite    SQLiteConfig
	Content   ContentConfig
	Loot      LootConfig
	Telemetry TelemetryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

// SQLiteConfig holds the SQLite database location
type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"adventurer.db"`
}

// ContentConfig selects where content tables and spell lists come from
type ContentConfig struct {
	// Dir overrides the embedded tables when set
	Dir         string `env:"CONTENT_DIR"`
	SpellSource string `env:"SPELL_SOURCE" envDefault:"content"`
}

// LootConfig holds loot rolling settings
type LootConfig struct {
	// Seed makes loot rolls reproducible; 0 seeds from the clock
	Seed int64 `env:"LOOT_SEED"`
}

// TelemetryConfig holds tracing settings; tracing is off without an endpoint
type TelemetryConfig struct {
	Endpoint    string `env:"OTEL_ENDPOINT"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"adventurer"`
}

// LoadDotEnv loads .env style files into the environment without overriding
// variables already set. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	err := godotenv.Load(paths...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load dotenv: %w", err)
	}
	return nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	cfg.Content.SpellSource = strings.ToLower(strings.TrimSpace(cfg.Content.SpellSource))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("STORE must be one of memory, redis, sqlite; got %q", c.Store)
	}

	switch c.Content.SpellSource {
	case SpellSourceContent, SpellSourceDND5eAPI:
	default:
		return fmt.Errorf("SPELL_SOURCE must be content or dnd5eapi; got %q", c.Content.SpellSource)
	}

	if c.Store == StoreSQLite && strings.TrimSpace(c.SQLite.Path) == "" {
		return fmt.Errorf("SQLITE_PATH is required when STORE=sqlite")
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error)
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
