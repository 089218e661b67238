// Package dnd5eapi serves class spell lists from the D&D 5e SRD API. Lists are
// fetched once by Preload and then served from memory, so SpellsFor never
// blocks or fails.
package dnd5eapi

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5eapi -source=catalog.go

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
)

const defaultConcurrency = 8

// Client is the part of the dnd5e API client the catalog calls
type Client interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
	GetSpell(key string) (*entities.Spell, error)
}

// Config configures a Catalog
type Config struct {
	// Client defaults to the public API reached through HTTPClient
	Client      Client
	HTTPClient  *http.Client
	Concurrency int
	Logger      *slog.Logger
}

type listKey struct {
	class character.Class
	tier  int
}

// Catalog caches spell lists per class and tier
type Catalog struct {
	client      Client
	concurrency int
	logger      *slog.Logger

	mu    sync.RWMutex
	lists map[listKey][]spell.Spell
}

// New creates a catalog
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, rpgerr.InvalidArgument("dnd5eapi: config is required")
	}

	client := cfg.Client
	if client == nil {
		httpClient := cfg.HTTPClient
		if httpClient == nil {
			httpClient = http.DefaultClient
		}
		api, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{Client: httpClient})
		if err != nil {
			return nil, rpgerr.Wrap(err, "failed to create dnd5e client")
		}
		client = api
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Catalog{
		client:      client,
		concurrency: concurrency,
		logger:      logger,
		lists:       make(map[listKey][]spell.Spell),
	}, nil
}

// Preload fetches the spell list of every class and tier combination
func (c *Catalog) Preload(ctx context.Context, classes []character.Class, tiers []int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, class := range classes {
		for _, tier := range tiers {
			g.Go(func() error {
				spells, err := c.fetch(ctx, class, tier)
				if err != nil {
					return err
				}

				c.mu.Lock()
				c.lists[listKey{class: class, tier: tier}] = spells
				c.mu.Unlock()
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to preload spell catalog")
	}
	return nil
}

func (c *Catalog) fetch(ctx context.Context, class character.Class, tier int) ([]spell.Spell, error) {
	level := tier
	refs, err := c.client.ListSpells(&dnd5e.ListSpellsInput{
		Class: class.Key(),
		Level: &level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list level %d spells for class %s: %w", tier, class, err)
	}

	spells := make([]spell.Spell, len(refs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			apiSpell, err := c.client.GetSpell(ref.Key)
			if err != nil {
				return fmt.Errorf("failed to get spell %s: %w", ref.Key, err)
			}
			if apiSpell == nil {
				return nil
			}
			spells[i] = convertSpell(apiSpell)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	spells = slices.DeleteFunc(spells, func(s spell.Spell) bool { return s.ID == "" })
	c.logger.DebugContext(ctx, "loaded spell list", "class", class, "tier", tier, "count", len(spells))
	return spells, nil
}

// SpellsFor returns a preloaded list; lists that were never loaded are empty
func (c *Catalog) SpellsFor(class character.Class, tier int) []spell.Spell {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.lists[listKey{class: class, tier: tier}])
}

// CantripsFor returns the preloaded cantrip list of a class
func (c *Catalog) CantripsFor(class character.Class) []spell.Spell {
	return c.SpellsFor(class, spell.CantripLevel)
}

// convertSpell maps an SRD spell onto the domain model. Effect is only set
// for spells whose slot damage parses as dice.
func convertSpell(apiSpell *entities.Spell) spell.Spell {
	s := spell.Spell{
		ID:     apiSpell.Key,
		Name:   apiSpell.Name,
		Level:  apiSpell.SpellLevel,
		Target: convertTarget(apiSpell),
	}

	if apiSpell.SpellSchool != nil {
		s.School = spell.School(strings.ToLower(apiSpell.SpellSchool.Name))
	}

	if dmg := apiSpell.SpellDamage; dmg != nil && dmg.SpellDamageAtSlotLevel != nil {
		if expr, err := dice.Parse(strings.ReplaceAll(dmg.SpellDamageAtSlotLevel.FirstLevel, " ", "")); err == nil {
			effect := spell.DamageEffect{Dice: expr}
			if dmg.SpellDamageType != nil {
				effect.DamageType = strings.ToLower(dmg.SpellDamageType.Name)
			}
			s.Effect = effect
		}
	}

	if apiSpell.DC != nil && apiSpell.DC.DCType != nil {
		outcome := spell.SaveNegates
		if strings.EqualFold(apiSpell.DC.DCSuccess, "half") {
			outcome = spell.SaveHalf
		}
		s.SavingThrow = &spell.SavingThrow{
			Ability:   abilityName(apiSpell.DC.DCType.Name),
			OnSuccess: outcome,
		}
	}

	return s
}

func convertTarget(apiSpell *entities.Spell) spell.Target {
	if apiSpell.AreaOfEffect != nil {
		return spell.Target{Shape: spell.ShapeArea, Size: apiSpell.AreaOfEffect.Size}
	}
	if strings.EqualFold(apiSpell.Range, "self") {
		return spell.Target{Shape: spell.ShapeSelf}
	}
	return spell.Target{Shape: spell.ShapeSingle}
}

func abilityName(short string) string {
	switch strings.ToLower(short) {
	case "str":
		return "strength"
	case "dex":
		return "dexterity"
	case "con":
		return "constitution"
	case "int":
		return "intelligence"
	case "wis":
		return "wisdom"
	case "cha":
		return "charisma"
	}
	return strings.ToLower(short)
}
