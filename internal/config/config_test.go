package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORE", "LOG_LEVEL", "REDIS_URL", "SQLITE_PATH", "CONTENT_DIR",
		"SPELL_SOURCE", "LOOT_SEED", "OTEL_ENDPOINT", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, config.SpellSourceContent, cfg.Content.SpellSource)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "adventurer.db", cfg.SQLite.Path)
	assert.Zero(t, cfg.Loot.Seed)
	assert.Empty(t, cfg.Telemetry.Endpoint)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/chars.db")
	t.Setenv("SPELL_SOURCE", "dnd5eapi")
	t.Setenv("LOOT_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OTEL_ENDPOINT", "http://localhost:4318")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreSQLite, cfg.Store)
	assert.Equal(t, "/tmp/chars.db", cfg.SQLite.Path)
	assert.Equal(t, config.SpellSourceDND5eAPI, cfg.Content.SpellSource)
	assert.Equal(t, int64(42), cfg.Loot.Seed)
	assert.Equal(t, "http://localhost:4318", cfg.Telemetry.Endpoint)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown store", key: "STORE", val: "postgres"},
		{name: "unknown spell source", key: "SPELL_SOURCE", val: "wiki"},
		{name: "bad log level", key: "LOG_LEVEL", val: "loud"},
		{name: "bad seed", key: "LOOT_SEED", val: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORE=redis\nREDIS_URL=redis://cache:6379/2\n"), 0o600))

	require.NoError(t, config.LoadDotEnv(path))
	t.Cleanup(func() {
		_ = os.Unsetenv("STORE")
		_ = os.Unsetenv("REDIS_URL")
	})

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.StoreRedis, cfg.Store)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, config.LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
