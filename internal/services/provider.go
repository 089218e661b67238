package services

import (
	"log/slog"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/actions"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/loot"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/progression"
	characterService "github.com/rhydlewis/adventurer-rpg-sub002/internal/services/character"
	combatService "github.com/rhydlewis/adventurer-rpg-sub002/internal/services/combat"
	levelupService "github.com/rhydlewis/adventurer-rpg-sub002/internal/services/levelup"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/uuid"
)

// SpellCatalog serves class spell lists
type SpellCatalog interface {
	SpellsFor(class character.Class, tier int) []spell.Spell
	CantripsFor(class character.Class) []spell.Spell
}

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
	CombatService    combatService.Service
	LevelUpService   levelupService.Service

	Spells SpellCatalog
	Loot   *loot.Resolver
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Tables *content.Tables

	// SpellCatalog replaces the spell lists of Tables when set
	SpellCatalog        SpellCatalog
	CharacterRepository characters.Repository
	LootSource          dice.Source
	UUIDGenerator       uuid.Generator
	Logger              *slog.Logger
}

// catalogContent serves class data from the tables and spells from the catalog
type catalogContent struct {
	*content.Tables
	catalog SpellCatalog
}

func (c catalogContent) SpellsFor(class character.Class, tier int) []spell.Spell {
	return c.catalog.SpellsFor(class, tier)
}

func (c catalogContent) CantripsFor(class character.Class) []spell.Spell {
	return c.catalog.CantripsFor(class)
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil || cfg.Tables == nil {
		panic("services: content tables are required")
	}

	// Use in-memory repository if none provided
	charRepo := cfg.CharacterRepository
	if charRepo == nil {
		charRepo = characters.NewInMemoryRepository()
	}

	var spells SpellCatalog = cfg.Tables
	engineContent := actions.Content(cfg.Tables)
	if cfg.SpellCatalog != nil {
		merged := catalogContent{Tables: cfg.Tables, catalog: cfg.SpellCatalog}
		spells = merged
		engineContent = merged
	}

	lootResolver := loot.NewResolver(&loot.Config{
		Tables: cfg.Tables,
		Source: cfg.LootSource,
		Logger: cfg.Logger,
	})

	return &Provider{
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Repository:    charRepo,
			Templates:     cfg.Tables,
			UUIDGenerator: cfg.UUIDGenerator,
			Logger:        cfg.Logger,
		}),
		CombatService: combatService.NewService(&combatService.ServiceConfig{
			Repository: charRepo,
			Engine:     actions.NewEngine(&actions.Config{Content: engineContent}),
			Loot:       lootResolver,
			Logger:     cfg.Logger,
		}),
		LevelUpService: levelupService.NewService(&levelupService.ServiceConfig{
			Repository: charRepo,
			Resolver: progression.NewResolver(&progression.Config{
				Table:   cfg.Tables,
				Catalog: spells,
			}),
			Templates: cfg.Tables,
			Logger:    cfg.Logger,
		}),
		Spells: spells,
		Loot:   lootResolver,
	}
}
