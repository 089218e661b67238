package actions

import (
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/action"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/spell"
)

// CanPerformAction re-checks an action against the live character. Only the
// action's Available flag and its identifiers are trusted.
func (e *Engine) CanPerformAction(char *character.Character, a action.Action) bool {
	return CanPerform(char, a)
}

// CanPerform is CanPerformAction without an engine; it needs no content
func CanPerform(char *character.Character, a action.Action) bool {
	if char == nil || a == nil || !a.Common().Available {
		return false
	}

	switch a := a.(type) {
	case action.Attack:
		return true
	case action.UseAbility:
		ability, ok := char.Resources.FindAbility(a.AbilityName)
		if !ok {
			return false
		}
		return ability.CanUse()
	case action.CastSpell:
		if !char.Resources.HasSpellSlots() {
			return false
		}
		switch a.SpellLevel {
		case spell.CantripLevel:
			return true
		case 1:
			pool, ok := char.Resources.Slot(1)
			return ok && pool.Current > 0
		}
		return false
	case action.UseItem:
		return false
	}

	return false
}
