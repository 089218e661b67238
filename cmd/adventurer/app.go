package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/config"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content/dnd5eapi"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/services"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/telemetry"
)

// app holds what every command needs once configuration is loaded
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	tables   *content.Tables
	provider *services.Provider
	closers  []func(context.Context) error
}

func (a *app) setup(ctx context.Context) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to set up tracing")
	}
	a.closers = append(a.closers, shutdown)

	a.tables, err = loadTables(cfg.Content.Dir)
	if err != nil {
		return err
	}

	repo, err := a.openRepository(ctx)
	if err != nil {
		return err
	}

	providerConfig := &services.ProviderConfig{
		Tables:              a.tables,
		CharacterRepository: repo,
		LootSource:          dice.NewRandomSource(cfg.Loot.Seed),
		Logger:              a.logger,
	}

	if cfg.Content.SpellSource == config.SpellSourceDND5eAPI {
		catalog, err := a.openSpellCatalog(ctx)
		if err != nil {
			return err
		}
		providerConfig.SpellCatalog = catalog
	}

	a.provider = services.NewProvider(providerConfig)
	return nil
}

func (a *app) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil && a.logger != nil {
			a.logger.Warn("shutdown failed", "error", err)
		}
	}
	a.closers = nil
}

func loadTables(dir string) (*content.Tables, error) {
	if dir == "" {
		return content.LoadDefault()
	}
	return content.LoadDir(dir)
}

func (a *app) openRepository(ctx context.Context) (characters.Repository, error) {
	switch a.cfg.Store {
	case config.StoreRedis:
		opts, err := redis.ParseURL(a.cfg.Redis.URL)
		if err != nil {
			return nil, rpgerr.WrapWithCode(err, rpgerr.CodeInvalidArgument, "failed to parse REDIS_URL")
		}

		client := redis.NewClient(opts)
		a.closers = append(a.closers, func(context.Context) error { return client.Close() })

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to connect to redis")
		}

		a.logger.Debug("using redis character store", "addr", opts.Addr, "db", opts.DB)
		return characters.NewRedis(&characters.RedisConfig{Client: client}), nil

	case config.StoreSQLite:
		repo, err := characters.OpenSQLite(a.cfg.SQLite.Path, nil)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func(context.Context) error { return repo.Close() })

		a.logger.Debug("using sqlite character store", "path", a.cfg.SQLite.Path)
		return repo, nil
	}

	return characters.NewInMemoryRepository(), nil
}

func (a *app) openSpellCatalog(ctx context.Context) (*dnd5eapi.Catalog, error) {
	catalog, err := dnd5eapi.New(&dnd5eapi.Config{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Logger: a.logger,
	})
	if err != nil {
		return nil, err
	}

	var casters []character.Class
	for _, class := range character.Classes() {
		if tmpl, ok := a.tables.ClassTemplate(class); ok && tmpl.IsCaster() {
			casters = append(casters, class)
		}
	}

	if err := catalog.Preload(ctx, casters, []int{spell.CantripLevel, 1}); err != nil {
		return nil, err
	}
	return catalog, nil
}
