// Package combat orchestrates a character's turn and the aftermath of a fight
// on top of the stateless rules engines.
package combat

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/action"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	lootdomain "github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/loot"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/actions"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/loot"
)

const (
	// ReasonNoSlots is returned when a level-1 cast has no slot to spend
	ReasonNoSlots = "No spell slots remaining"

	// ReasonUnavailable is returned for any other rejected action
	ReasonUnavailable = "Action not available"
)

var tracer = otel.Tracer("github.com/rhydlewis/adventurer-rpg-sub002/internal/services/combat")

// Engine lists and re-checks actions
type Engine interface {
	GetAvailableActions(char *character.Character) []action.Action
	CanPerformAction(char *character.Character, a action.Action) bool
}

// LootRoller rolls a loot table
type LootRoller interface {
	RollLoot(tableID string) []lootdomain.Drop
}

// Service runs combat turns against stored characters
type Service interface {
	// ListActions returns the actions offered to the character right now
	ListActions(ctx context.Context, characterID string) ([]action.Action, error)

	// PerformAction spends the resources an action costs and saves the character
	PerformAction(ctx context.Context, input *PerformActionInput) (*PerformActionResult, error)

	// ResolveDefeat rolls loot for a defeated enemy and credits the character
	ResolveDefeat(ctx context.Context, input *ResolveDefeatInput) (*ResolveDefeatResult, error)

	// Rest takes a long rest, refilling abilities and spell slots
	Rest(ctx context.Context, characterID string) (*character.Character, error)
}

// PerformActionInput is the action a character wants to take
type PerformActionInput struct {
	CharacterID string
	Action      action.Action
}

// PerformActionResult reports what happened; a rejected action is not an error
type PerformActionResult struct {
	Success        bool
	Message        string
	UsesRemaining  int
	SlotsRemaining int
	Character      *character.Character
}

// ResolveDefeatInput names the loot table of the defeated enemy
type ResolveDefeatInput struct {
	CharacterID string
	LootTableID string
}

// ResolveDefeatResult carries the drops and the message shown to the player
type ResolveDefeatResult struct {
	Drops     []lootdomain.Drop
	Message   string
	Character *character.Character
}

type service struct {
	repository characters.Repository
	engine     Engine
	loot       LootRoller
	logger     *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository characters.Repository
	Engine     Engine
	Loot       LootRoller
	Logger     *slog.Logger // Optional - defaults to slog.Default()
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("combat: config is required")
	}
	if cfg.Repository == nil {
		panic("combat: repository is required")
	}
	if cfg.Engine == nil {
		panic("combat: engine is required")
	}
	if cfg.Loot == nil {
		panic("combat: loot roller is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		repository: cfg.Repository,
		engine:     cfg.Engine,
		loot:       cfg.Loot,
		logger:     logger,
	}
}

// Compile-time checks that the rules packages satisfy the service dependencies
var (
	_ Engine     = (*actions.Engine)(nil)
	_ LootRoller = (*loot.Resolver)(nil)
)

func (s *service) ListActions(ctx context.Context, characterID string) ([]action.Action, error) {
	ctx, span := tracer.Start(ctx, "combat.ListActions",
		trace.WithAttributes(attribute.String("character.id", characterID)))
	defer span.End()

	char, err := s.load(ctx, characterID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	available := s.engine.GetAvailableActions(char)
	span.SetAttributes(attribute.Int("actions.count", len(available)))
	return available, nil
}

func (s *service) PerformAction(ctx context.Context, input *PerformActionInput) (*PerformActionResult, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input is required")
	}
	if input.Action == nil {
		return nil, rpgerr.InvalidArgument("action is required").
			WithMeta("character_id", input.CharacterID)
	}

	ctx, span := tracer.Start(ctx, "combat.PerformAction",
		trace.WithAttributes(
			attribute.String("character.id", input.CharacterID),
			attribute.String("action.kind", string(input.Action.Kind())),
			attribute.String("action.name", input.Action.Common().Name),
		))
	defer span.End()

	char, err := s.load(ctx, input.CharacterID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	if !s.engine.CanPerformAction(char, input.Action) {
		reason := rejectionReason(char, input.Action)
		span.SetAttributes(attribute.Bool("action.performed", false))
		s.logger.InfoContext(ctx, "action rejected",
			"character_id", char.ID,
			"action", input.Action.Common().Name,
			"reason", reason)
		return &PerformActionResult{
			Success:   false,
			Message:   reason,
			Character: char,
		}, nil
	}

	result := &PerformActionResult{Success: true, Character: char}
	spent := false

	switch a := input.Action.(type) {
	case action.Attack:
		result.Message = fmt.Sprintf("%s uses %s", char.Name, a.Name)

	case action.UseAbility:
		ability, _ := char.Resources.FindAbility(a.AbilityName)
		if !ability.IsAtWill() {
			ability.Use()
			spent = true
		}
		result.UsesRemaining = ability.CurrentUses
		result.Message = fmt.Sprintf("%s uses %s", char.Name, ability.Name)

	case action.CastSpell:
		if a.SpellLevel > 0 {
			char.Resources.UseSpellSlot(a.SpellLevel)
			spent = true
		}
		pool, _ := char.Resources.Slot(1)
		result.SlotsRemaining = pool.Current
		result.Message = fmt.Sprintf("%s casts %s", char.Name, a.Name)
	}

	if spent {
		if err := s.repository.Update(ctx, char); err != nil {
			recordError(span, err)
			return nil, rpgerr.Wrapf(err, "failed to save character %s", char.ID)
		}
	}

	span.SetAttributes(attribute.Bool("action.performed", true))
	return result, nil
}

func (s *service) ResolveDefeat(ctx context.Context, input *ResolveDefeatInput) (*ResolveDefeatResult, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input is required")
	}
	if input.LootTableID == "" {
		return nil, rpgerr.InvalidArgument("loot table ID is required").
			WithMeta("character_id", input.CharacterID)
	}

	ctx, span := tracer.Start(ctx, "combat.ResolveDefeat",
		trace.WithAttributes(
			attribute.String("character.id", input.CharacterID),
			attribute.String("loot.table_id", input.LootTableID),
		))
	defer span.End()

	char, err := s.load(ctx, input.CharacterID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	drops := s.loot.RollLoot(input.LootTableID)
	span.SetAttributes(attribute.Int("loot.drops", len(drops)))

	for _, drop := range drops {
		if drop.IsGold() {
			char.AddGold(drop.Amount)
			continue
		}
		if itemType, ok := drop.Type.ItemType(); ok {
			char.AddItem(itemType, drop.ItemID, drop.Quantity)
		}
	}

	if len(drops) > 0 {
		if err := s.repository.Update(ctx, char); err != nil {
			recordError(span, err)
			return nil, rpgerr.Wrapf(err, "failed to save loot for character %s", char.ID)
		}
	}

	return &ResolveDefeatResult{
		Drops:     drops,
		Message:   loot.FormatLootMessage(drops),
		Character: char,
	}, nil
}

func (s *service) Rest(ctx context.Context, characterID string) (*character.Character, error) {
	ctx, span := tracer.Start(ctx, "combat.Rest",
		trace.WithAttributes(attribute.String("character.id", characterID)))
	defer span.End()

	char, err := s.load(ctx, characterID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	char.Resources.LongRest()

	if err := s.repository.Update(ctx, char); err != nil {
		recordError(span, err)
		return nil, rpgerr.Wrapf(err, "failed to save character %s", char.ID)
	}

	s.logger.DebugContext(ctx, "long rest taken", "character_id", char.ID)
	return char, nil
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

func rejectionReason(char *character.Character, a action.Action) string {
	switch a := a.(type) {
	case action.UseAbility:
		if _, ok := char.Resources.FindAbility(a.AbilityName); ok {
			return actions.ReasonNoUses
		}
	case action.CastSpell:
		if a.SpellLevel == 1 && char.Resources.HasSpellSlots() {
			return ReasonNoSlots
		}
	}
	if reason := a.Common().DisabledReason; reason != "" {
		return reason
	}
	return ReasonUnavailable
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
