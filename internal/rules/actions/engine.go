// Package actions enumerates the combat actions a character may take and
// re-checks a chosen action before it is executed.
package actions

//go:generate mockgen -destination=mock/mock_content.go -package=mockactions -source=engine.go

import (
	"fmt"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/action"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
)

const (
	// ReasonNoUses is shown on abilities with no uses left
	ReasonNoUses = "No uses remaining"

	// CastLevelOneName names the aggregate level-1 spell action
	CastLevelOneName = "Cast Level 1 Spell"
)

// Content is the class data the engine reads
type Content interface {
	CantripsFor(class character.Class) []spell.Spell
	AttackVariantsFor(class character.Class) []content.AttackVariant
}

// Config holds the engine dependencies
type Config struct {
	Content Content
}

// Engine computes available actions; it keeps no state between calls
type Engine struct {
	content Content
}

// NewEngine creates an engine
func NewEngine(cfg *Config) *Engine {
	if cfg == nil || cfg.Content == nil {
		panic("actions: content is required")
	}

	return &Engine{content: cfg.Content}
}

// GetAvailableActions lists every action offered to the character, in order:
// baseline attack, attack variants, abilities, cantrips, then the level-1 cast.
func (e *Engine) GetAvailableActions(char *character.Character) []action.Action {
	if char == nil {
		return []action.Action{baselineAttack(nil)}
	}

	actions := []action.Action{baselineAttack(char.Equipment.Weapon)}

	if char.MechanicsLocked {
		for _, v := range e.content.AttackVariantsFor(char.Class) {
			actions = append(actions, action.Attack{
				Base: action.Base{
					Name:        v.Name,
					Description: v.Description,
					Available:   true,
				},
				WeaponID:       char.Equipment.Weapon.GetKey(),
				Variant:        v.Name,
				AttackModifier: v.AttackModifier,
				DamageModifier: v.DamageModifier,
			})
		}
	}

	for _, ability := range char.Resources.Abilities {
		actions = append(actions, abilityAction(ability))
	}

	if !char.Resources.HasSpellSlots() {
		return actions
	}

	for _, cantrip := range e.content.CantripsFor(char.Class) {
		actions = append(actions, action.CastSpell{
			Base: action.Base{
				Name:        cantrip.Name,
				Description: cantrip.Description,
				Available:   true,
			},
			SpellID:      cantrip.ID,
			SpellLevel:   spell.CantripLevel,
			RequiresSlot: false,
		})
	}

	if pool, ok := char.Resources.Slot(1); ok && pool.Current > 0 {
		actions = append(actions, action.CastSpell{
			Base: action.Base{
				Name:        CastLevelOneName,
				Description: fmt.Sprintf("Cast a level 1 spell (%d/%d slots)", pool.Current, pool.Max),
				Available:   true,
			},
			SpellLevel:   1,
			RequiresSlot: true,
		})
	}

	return actions
}

func baselineAttack(weapon *equipment.Weapon) action.Attack {
	name := weapon.GetName()
	if name == "" {
		name = equipment.UnarmedStrikeName
	}

	damage := equipment.UnarmedDamage
	damageType := "bludgeoning"
	if weapon != nil && !weapon.Damage.IsZero() {
		damage = weapon.Damage
		damageType = weapon.DamageType
	}

	description := fmt.Sprintf("Attack with %s (%s", name, damage)
	if damageType != "" {
		description += " " + damageType
	}
	description += ")"

	return action.Attack{
		Base: action.Base{
			Name:        name,
			Description: description,
			Available:   true,
		},
		WeaponID: weapon.GetKey(),
	}
}

func abilityAction(ability character.Ability) action.UseAbility {
	a := action.UseAbility{
		Base: action.Base{
			Name:        ability.Name,
			Description: ability.Description,
			Available:   true,
		},
		AbilityName:   ability.Name,
		UsesRemaining: ability.CurrentUses,
		MaxUses:       ability.MaxUses,
	}
	if !ability.CanUse() {
		a.Disable(ReasonNoUses)
	}
	return a
}
