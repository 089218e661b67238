package spell

import (
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
)

// CantripLevel is the spell level of at-will spells
const CantripLevel = 0

// School is a school of magic
type School string

const (
	SchoolAbjuration    School = "abjuration"
	SchoolConjuration   School = "conjuration"
	SchoolDivination    School = "divination"
	SchoolEnchantment   School = "enchantment"
	SchoolEvocation     School = "evocation"
	SchoolIllusion      School = "illusion"
	SchoolNecromancy    School = "necromancy"
	SchoolTransmutation School = "transmutation"
)

// Shape describes what a spell can target
type Shape string

const (
	ShapeSingle Shape = "single"
	ShapeSelf   Shape = "self"
	ShapeArea   Shape = "area"
	ShapeMulti  Shape = "multi"
)

// Target is the targeting rule of a spell
type Target struct {
	Shape Shape `json:"shape"`
	Size  int   `json:"size,omitempty"`  // area radius in feet
	Count int   `json:"count,omitempty"` // max targets for multi
}

// SaveOutcome is what a successful saving throw does to the effect
type SaveOutcome string

const (
	SaveHalf    SaveOutcome = "half"
	SaveNegates SaveOutcome = "negates"
)

// SavingThrow is the optional save a target may attempt
type SavingThrow struct {
	Ability   string      `json:"ability"`
	OnSuccess SaveOutcome `json:"on_success"`
}

// Spell is an immutable spell definition
type Spell struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Level       int          `json:"level"`
	School      School       `json:"school"`
	Target      Target       `json:"target"`
	Effect      Effect       `json:"-"`
	SavingThrow *SavingThrow `json:"saving_throw,omitempty"`
	Description string       `json:"description"`
}

// IsCantrip reports whether the spell is castable at will
func (s *Spell) IsCantrip() bool {
	return s.Level == CantripLevel
}

// RequiresSlot reports whether casting consumes a slot; only leveled spells do
func (s *Spell) RequiresSlot() bool {
	return !s.IsCantrip()
}

// EffectKind tags the effect payload variants
type EffectKind string

const (
	EffectKindDamage    EffectKind = "damage"
	EffectKindHeal      EffectKind = "heal"
	EffectKindBuff      EffectKind = "buff"
	EffectKindCondition EffectKind = "condition"
)

// Effect is the payload of a spell; one of DamageEffect, HealEffect,
// BuffEffect or ConditionEffect
type Effect interface {
	Kind() EffectKind
	isEffect()
}

// DamageEffect deals dice damage of a type
type DamageEffect struct {
	Dice       dice.Expression `json:"dice"`
	DamageType string          `json:"damage_type"`
}

// HealEffect restores dice hit points
type HealEffect struct {
	Dice dice.Expression `json:"dice"`
}

// BuffEffect grants a stat bonus for a number of rounds
type BuffEffect struct {
	Stat   string `json:"stat"`
	Bonus  int    `json:"bonus"`
	Rounds int    `json:"rounds"`
}

// ConditionEffect applies a named condition for a number of rounds
type ConditionEffect struct {
	Condition string `json:"condition"`
	Rounds    int    `json:"rounds"`
}

func (DamageEffect) Kind() EffectKind    { return EffectKindDamage }
func (HealEffect) Kind() EffectKind      { return EffectKindHeal }
func (BuffEffect) Kind() EffectKind      { return EffectKindBuff }
func (ConditionEffect) Kind() EffectKind { return EffectKindCondition }

func (DamageEffect) isEffect()    {}
func (HealEffect) isEffect()      {}
func (BuffEffect) isEffect()      {}
func (ConditionEffect) isEffect() {}
