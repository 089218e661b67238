// Package progression decides which spells a character may learn on level up.
package progression

//go:generate mockgen -destination=mock/mock_catalog.go -package=mockprogression -source=resolver.go

import (
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/content"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
)

// Table maps a class and level to what is learned
type Table interface {
	Progression(class character.Class, level int) (content.ProgressionStep, bool)
}

// Catalog lists the spells a class can learn at a tier
type Catalog interface {
	SpellsFor(class character.Class, tier int) []spell.Spell
}

// Config holds the resolver dependencies
type Config struct {
	Table   Table
	Catalog Catalog
}

// LearningResult is a proposal; nothing is learned until AddSpellsToCharacter
type LearningResult struct {
	AvailableSpells []spell.Spell `json:"available_spells"`
	SpellsToSelect  int           `json:"spells_to_select"`
	SpellLevel      int           `json:"spell_level"`
}

// Resolver computes spell learning proposals
type Resolver struct {
	table   Table
	catalog Catalog
}

// NewResolver creates a resolver
func NewResolver(cfg *Config) *Resolver {
	if cfg == nil {
		panic("progression: config is required")
	}
	if cfg.Table == nil {
		panic("progression: table is required")
	}
	if cfg.Catalog == nil {
		panic("progression: catalog is required")
	}

	return &Resolver{
		table:   cfg.Table,
		catalog: cfg.Catalog,
	}
}

// GetSpellProgressionForLevel returns false for non-casters and levels outside the table
func (r *Resolver) GetSpellProgressionForLevel(class character.Class, level int) (content.ProgressionStep, bool) {
	return r.table.Progression(class, level)
}

// CalculateSpellsToLearn offers the class spells of the progression tier the
// character does not know yet. False means there is nothing to learn at this
// level; a true result may still offer zero spells.
func (r *Resolver) CalculateSpellsToLearn(char *character.Character, newLevel int) (LearningResult, bool) {
	if char == nil {
		return LearningResult{}, false
	}

	step, ok := r.table.Progression(char.Class, newLevel)
	if !ok {
		return LearningResult{}, false
	}

	candidates := r.catalog.SpellsFor(char.Class, step.SpellLevel)
	available := make([]spell.Spell, 0, len(candidates))
	for _, s := range candidates {
		if !char.KnowsSpell(s.ID) {
			available = append(available, s)
		}
	}

	return LearningResult{
		AvailableSpells: available,
		SpellsToSelect:  min(step.SpellsToLearn, len(available)),
		SpellLevel:      step.SpellLevel,
	}, true
}

// AddSpellsToCharacter returns a copy of char with the spells appended to
// KnownSpells. The input is not modified and nothing is deduplicated.
func AddSpellsToCharacter(char *character.Character, spells []spell.Spell) *character.Character {
	if char == nil {
		return nil
	}

	out := char.Clone()
	for _, s := range spells {
		out.KnownSpells = append(out.KnownSpells, s.ID)
	}
	return out
}
