// Package levelup advances a character's level and records the spells chosen
// from the progression offer.
package levelup

import (
	"context"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/progression"
)

var tracer = otel.Tracer("github.com/rhydlewis/adventurer-rpg-sub002/internal/services/levelup")

// Resolver proposes the spells learnable at a level
type Resolver interface {
	CalculateSpellsToLearn(char *character.Character, newLevel int) (progression.LearningResult, bool)
}

// Templates provides slot maxima per level
type Templates interface {
	ClassTemplate(class character.Class) (*content.ClassTemplate, bool)
}

// Service levels characters up
type Service interface {
	// Preview shows what reaching newLevel would offer without changing anything
	Preview(ctx context.Context, characterID string, newLevel int) (*PreviewResult, error)

	// Commit applies the level and the chosen spells
	Commit(ctx context.Context, input *CommitInput) (*character.Character, error)
}

// PreviewResult is nil-Learning when the class learns nothing at that level
type PreviewResult struct {
	CharacterID string
	NewLevel    int
	Learning    *progression.LearningResult
}

// CommitInput holds the level to reach and the chosen spell IDs
type CommitInput struct {
	CharacterID string
	NewLevel    int
	SpellIDs    []string
}

type service struct {
	repository characters.Repository
	resolver   Resolver
	templates  Templates
	logger     *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository characters.Repository
	Resolver   Resolver
	Templates  Templates
	Logger     *slog.Logger
}

// NewService creates a new level up service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("levelup: config is required")
	}
	if cfg.Repository == nil {
		panic("levelup: repository is required")
	}
	if cfg.Resolver == nil {
		panic("levelup: resolver is required")
	}
	if cfg.Templates == nil {
		panic("levelup: templates are required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		repository: cfg.Repository,
		resolver:   cfg.Resolver,
		templates:  cfg.Templates,
		logger:     logger,
	}
}

var _ Resolver = (*progression.Resolver)(nil)

func (s *service) Preview(ctx context.Context, characterID string, newLevel int) (*PreviewResult, error) {
	ctx, span := tracer.Start(ctx, "levelup.Preview",
		trace.WithAttributes(
			attribute.String("character.id", characterID),
			attribute.Int("character.new_level", newLevel),
		))
	defer span.End()

	char, err := s.load(ctx, characterID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := checkLevel(char, newLevel); err != nil {
		return nil, err
	}

	result := &PreviewResult{CharacterID: char.ID, NewLevel: newLevel}
	if learning, ok := s.resolver.CalculateSpellsToLearn(char, newLevel); ok {
		result.Learning = &learning
	}
	return result, nil
}

func (s *service) Commit(ctx context.Context, input *CommitInput) (*character.Character, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "levelup.Commit",
		trace.WithAttributes(
			attribute.String("character.id", input.CharacterID),
			attribute.Int("character.new_level", input.NewLevel),
			attribute.Int("spells.selected", len(input.SpellIDs)),
		))
	defer span.End()

	char, err := s.load(ctx, input.CharacterID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if err := checkLevel(char, input.NewLevel); err != nil {
		return nil, err
	}

	chosen, err := s.selectSpells(char, input)
	if err != nil {
		return nil, err
	}

	updated := progression.AddSpellsToCharacter(char, chosen)
	updated.Level = input.NewLevel
	s.raiseSlots(updated)

	if err := s.repository.Update(ctx, updated); err != nil {
		span.RecordError(err)
		return nil, rpgerr.Wrapf(err, "failed to save character %s", updated.ID)
	}

	s.logger.InfoContext(ctx, "character leveled up",
		"character_id", updated.ID,
		"level", updated.Level,
		"spells_learned", len(chosen))

	return updated, nil
}

// selectSpells resolves the chosen IDs against the offer; anything not offered,
// repeated or beyond the allowance is rejected
func (s *service) selectSpells(char *character.Character, input *CommitInput) ([]spell.Spell, error) {
	learning, ok := s.resolver.CalculateSpellsToLearn(char, input.NewLevel)
	if !ok {
		if len(input.SpellIDs) > 0 {
			return nil, rpgerr.InvalidArgumentf("%s learns no spells at level %d", char.Class, input.NewLevel).
				WithMeta("character_id", char.ID)
		}
		return nil, nil
	}

	if len(input.SpellIDs) > learning.SpellsToSelect {
		return nil, rpgerr.InvalidArgumentf("can select at most %d spells, got %d",
			learning.SpellsToSelect, len(input.SpellIDs)).
			WithMeta("character_id", char.ID)
	}

	chosen := make([]spell.Spell, 0, len(input.SpellIDs))
	for _, id := range input.SpellIDs {
		idx := slices.IndexFunc(learning.AvailableSpells, func(sp spell.Spell) bool {
			return sp.ID == id
		})
		if idx < 0 {
			return nil, rpgerr.InvalidArgumentf("spell %s is not offered at level %d", id, input.NewLevel).
				WithMeta("character_id", char.ID).
				WithMeta("spell_id", id)
		}
		if slices.ContainsFunc(chosen, func(sp spell.Spell) bool { return sp.ID == id }) {
			return nil, rpgerr.InvalidArgumentf("spell %s selected twice", id).
				WithMeta("spell_id", id)
		}
		chosen = append(chosen, learning.AvailableSpells[idx])
	}

	return chosen, nil
}

// raiseSlots lifts slot maxima to the class table, adding the gained slots to
// the current pool
func (s *service) raiseSlots(char *character.Character) {
	tmpl, ok := s.templates.ClassTemplate(char.Class)
	if !ok {
		return
	}

	for key, maxSlots := range tmpl.SlotsAt(char.Level) {
		if char.Resources.SpellSlots == nil {
			char.Resources.SpellSlots = make(map[string]character.SlotPool)
		}
		pool := char.Resources.SpellSlots[key]
		if gain := maxSlots - pool.Max; gain > 0 {
			pool.Max = maxSlots
			pool.Current += gain
		}
		char.Resources.SpellSlots[key] = pool
	}
}

func (s *service) load(ctx context.Context, characterID string) (*character.Character, error) {
	if characterID == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to get character %s", characterID)
	}
	return char, nil
}

func checkLevel(char *character.Character, newLevel int) error {
	if newLevel <= char.Level {
		return rpgerr.FailedPreconditionf("character is already level %d", char.Level).
			WithMeta("character_id", char.ID).
			WithMeta("new_level", newLevel)
	}
	return nil
}
