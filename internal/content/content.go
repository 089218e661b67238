// Package content holds the immutable lookup tables the rules engines read:
// spells, class templates (abilities, variant attacks, spell lists, progression)
// and loot tables.
package content

import (
	"maps"
	"slices"
	"sort"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/loot"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
)

// AttackVariant is an optional attack trading accuracy against damage
type AttackVariant struct {
	Name           string
	Description    string
	AttackModifier int
	DamageModifier int
}

// ProgressionStep is what a class learns on reaching a level
type ProgressionStep struct {
	SpellsToLearn int
	SpellLevel    int
}

// SlotStep sets the slot pool maxima from a character level onwards
type SlotStep struct {
	FromLevel int
	Slots     map[string]int
}

// ClassTemplate is the static definition of a class
type ClassTemplate struct {
	Class          character.Class
	StartingWeapon *equipment.Weapon
	Abilities      []character.Ability
	AttackVariants []AttackVariant
	SlotSteps      []SlotStep
	SpellLists     map[int][]string
	Progression    map[int]ProgressionStep
}

// IsCaster reports whether the class has spell slots at any level
func (t *ClassTemplate) IsCaster() bool {
	return len(t.SlotSteps) > 0
}

// SlotsAt returns slot maxima for a character level, nil for non-casters
func (t *ClassTemplate) SlotsAt(level int) map[string]int {
	var slots map[string]int
	for _, step := range t.SlotSteps {
		if level >= step.FromLevel {
			slots = step.Slots
		}
	}
	return maps.Clone(slots)
}

// Tables is the loaded content; safe for concurrent reads
type Tables struct {
	spells  map[string]spell.Spell
	classes map[character.Class]*ClassTemplate
	loot    map[string]loot.Table
}

// Spell looks a spell up by id
func (t *Tables) Spell(id string) (spell.Spell, bool) {
	s, ok := t.spells[id]
	return s, ok
}

// SpellsFor returns the class spell list for a tier in content order
func (t *Tables) SpellsFor(class character.Class, tier int) []spell.Spell {
	tmpl, ok := t.classes[class]
	if !ok {
		return nil
	}

	ids := tmpl.SpellLists[tier]
	out := make([]spell.Spell, 0, len(ids))
	for _, id := range ids {
		if s, ok := t.spells[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// CantripsFor returns the fixed cantrip set of a class
func (t *Tables) CantripsFor(class character.Class) []spell.Spell {
	return t.SpellsFor(class, spell.CantripLevel)
}

// AttackVariantsFor returns the optional attacks a class defines
func (t *Tables) AttackVariantsFor(class character.Class) []AttackVariant {
	tmpl, ok := t.classes[class]
	if !ok {
		return nil
	}
	return slices.Clone(tmpl.AttackVariants)
}

// Progression returns what a class learns at a level
func (t *Tables) Progression(class character.Class, level int) (ProgressionStep, bool) {
	tmpl, ok := t.classes[class]
	if !ok {
		return ProgressionStep{}, false
	}
	step, ok := tmpl.Progression[level]
	return step, ok
}

// ClassTemplate returns the static definition of a class
func (t *Tables) ClassTemplate(class character.Class) (*ClassTemplate, bool) {
	tmpl, ok := t.classes[class]
	return tmpl, ok
}

// LootTable looks a loot table up by id
func (t *Tables) LootTable(id string) (loot.Table, bool) {
	table, ok := t.loot[id]
	return table, ok
}

// LootTableIDs lists loaded loot tables sorted by id
func (t *Tables) LootTableIDs() []string {
	ids := make([]string, 0, len(t.loot))
	for id := range t.loot {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
