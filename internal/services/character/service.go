// Package character builds new characters from class templates and reads them back.
package character

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/repositories/characters"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/uuid"
)

var tracer = otel.Tracer("github.com/rhydlewis/adventurer-rpg-sub002/internal/services/character")

// Templates provides class definitions
type Templates interface {
	ClassTemplate(class character.Class) (*content.ClassTemplate, bool)
}

// Service defines the character service interface
type Service interface {
	// CreateCharacter builds a character from its class template and stores it
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, characterID string) (*character.Character, error)

	// ListCharacters lists every stored character, oldest first
	ListCharacters(ctx context.Context) ([]*character.Character, error)

	// DeleteCharacter removes a character
	DeleteCharacter(ctx context.Context, characterID string) error
}

// CreateCharacterInput contains all data needed to create a character
type CreateCharacterInput struct {
	Name            string
	Class           character.Class
	Level           int // 0 means 1
	MechanicsLocked bool
}

type service struct {
	repository characters.Repository
	templates  Templates
	uuidGen    uuid.Generator
	logger     *slog.Logger
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    characters.Repository
	Templates     Templates
	UUIDGenerator uuid.Generator // Optional - defaults to random v4 UUIDs
	Logger        *slog.Logger
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("character: config is required")
	}
	if cfg.Repository == nil {
		panic("character: repository is required")
	}
	if cfg.Templates == nil {
		panic("character: templates are required")
	}

	svc := &service{
		repository: cfg.Repository,
		templates:  cfg.Templates,
		uuidGen:    cfg.UUIDGenerator,
		logger:     cfg.Logger,
	}
	if svc.uuidGen == nil {
		svc.uuidGen = uuid.NewGoogleUUIDGenerator()
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	return svc
}

func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error) {
	if input == nil {
		return nil, rpgerr.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, rpgerr.InvalidArgument("name is required")
	}

	level := input.Level
	if level == 0 {
		level = 1
	}
	if level < 1 {
		return nil, rpgerr.InvalidArgumentf("level must be at least 1, got %d", input.Level)
	}

	tmpl, ok := s.templates.ClassTemplate(input.Class)
	if !ok {
		return nil, rpgerr.InvalidArgumentf("unknown class %q", input.Class).
			WithMeta("class", string(input.Class))
	}

	ctx, span := tracer.Start(ctx, "character.CreateCharacter",
		trace.WithAttributes(
			attribute.String("character.class", string(tmpl.Class)),
			attribute.Int("character.level", level),
		))
	defer span.End()

	char := fromTemplate(tmpl, level)
	char.ID = s.uuidGen.New()
	char.Name = name
	char.MechanicsLocked = input.MechanicsLocked

	if err := s.repository.Create(ctx, char); err != nil {
		span.RecordError(err)
		return nil, rpgerr.Wrap(err, "failed to create character")
	}

	span.SetAttributes(attribute.String("character.id", char.ID))
	s.logger.InfoContext(ctx, "character created",
		"character_id", char.ID,
		"class", char.Class,
		"level", char.Level)

	return char, nil
}

func (s *service) GetCharacter(ctx context.Context, characterID string) (*character.Character, error) {
	if characterID == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	char, err := s.repository.Get(ctx, characterID)
	if err != nil {
		return nil, rpgerr.Wrapf(err, "failed to get character %s", characterID)
	}
	return char, nil
}

func (s *service) ListCharacters(ctx context.Context) ([]*character.Character, error) {
	chars, err := s.repository.List(ctx)
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to list characters")
	}
	return chars, nil
}

func (s *service) DeleteCharacter(ctx context.Context, characterID string) error {
	if characterID == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	if err := s.repository.Delete(ctx, characterID); err != nil {
		return rpgerr.Wrapf(err, "failed to delete character %s", characterID)
	}
	return nil
}

// fromTemplate sets up starting kit, full ability uses, slot pools and the
// class cantrips
func fromTemplate(tmpl *content.ClassTemplate, level int) *character.Character {
	char := &character.Character{
		Class:       tmpl.Class,
		Level:       level,
		KnownSpells: []string{},
		Inventory:   []equipment.InventoryItem{},
	}

	char.Equipment.Weapon = tmpl.StartingWeapon.Clone()

	char.Resources.Abilities = slices.Clone(tmpl.Abilities)
	for i := range char.Resources.Abilities {
		char.Resources.Abilities[i].Restore()
	}

	if slots := tmpl.SlotsAt(level); slots != nil {
		char.Resources.SpellSlots = make(map[string]character.SlotPool, len(slots))
		for key, n := range slots {
			char.Resources.SpellSlots[key] = character.SlotPool{Current: n, Max: n}
		}
		char.KnownSpells = append(char.KnownSpells, tmpl.SpellLists[spell.CantripLevel]...)
	}

	return char
}
