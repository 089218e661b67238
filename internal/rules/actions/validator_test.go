package actions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/action"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/actions"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/testutils"
)

func available(name string) action.Base {
	return action.Base{Name: name, Available: true}
}

func TestCanPerform(t *testing.T) {
	wizard := testutils.CreateTestWizard("w", 1)
	exhausted := testutils.CreateTestWizard("w0", 0)
	exhausted.Resources.Abilities[0].CurrentUses = 0
	rogue := testutils.CreateTestRogue("r")
	rogue.Resources.Abilities[0].CurrentUses = 0
	fighter := testutils.CreateTestFighter("f")

	tests := []struct {
		name   string
		char   *character.Character
		action action.Action
		want   bool
	}{
		{
			name:   "attack",
			char:   fighter,
			action: action.Attack{Base: available("Longsword")},
			want:   true,
		},
		{
			name:   "unavailable attack",
			char:   fighter,
			action: action.Attack{Base: action.Base{Name: "Longsword"}},
			want:   false,
		},
		{
			name:   "ability with uses",
			char:   wizard,
			action: action.UseAbility{Base: available("Arcane Recovery"), AbilityName: "Arcane Recovery"},
			want:   true,
		},
		{
			name:   "ability spent since enumeration",
			char:   exhausted,
			action: action.UseAbility{Base: available("Arcane Recovery"), AbilityName: "Arcane Recovery"},
			want:   false,
		},
		{
			name:   "at-will ability",
			char:   rogue,
			action: action.UseAbility{Base: available("Sneak Attack"), AbilityName: "Sneak Attack"},
			want:   true,
		},
		{
			name:   "unknown ability",
			char:   fighter,
			action: action.UseAbility{Base: available("Rage"), AbilityName: "Rage"},
			want:   false,
		},
		{
			name:   "cantrip",
			char:   exhausted,
			action: action.CastSpell{Base: available("Fire Bolt"), SpellID: "fire_bolt", SpellLevel: 0},
			want:   true,
		},
		{
			name:   "cantrip for non-caster",
			char:   fighter,
			action: action.CastSpell{Base: available("Fire Bolt"), SpellID: "fire_bolt", SpellLevel: 0},
			want:   false,
		},
		{
			name:   "level 1 with slot",
			char:   wizard,
			action: action.CastSpell{Base: available("Cast Level 1 Spell"), SpellLevel: 1, RequiresSlot: true},
			want:   true,
		},
		{
			name:   "level 1 without slot",
			char:   exhausted,
			action: action.CastSpell{Base: available("Cast Level 1 Spell"), SpellLevel: 1, RequiresSlot: true},
			want:   false,
		},
		{
			name:   "level 2 unsupported",
			char:   wizard,
			action: action.CastSpell{Base: available("Cast Level 2 Spell"), SpellLevel: 2, RequiresSlot: true},
			want:   false,
		},
		{
			name:   "item",
			char:   fighter,
			action: action.UseItem{Base: available("Healing Potion"), ItemID: "healing_potion"},
			want:   false,
		},
		{
			name:   "nil action",
			char:   fighter,
			action: nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, actions.CanPerform(tt.char, tt.action))
		})
	}
}

func TestCanPerformAction_UnavailableNeverValid(t *testing.T) {
	engine := newEngine(t)
	rogue := testutils.CreateTestRogue("r")

	for _, a := range engine.GetAvailableActions(rogue) {
		assert.True(t, engine.CanPerformAction(rogue, a), a.Common().Name)
	}

	disabled := action.UseAbility{Base: available("Sneak Attack"), AbilityName: "Sneak Attack"}
	disabled.Disable("stale")
	assert.False(t, engine.CanPerformAction(rogue, disabled), "at-will does not override a disabled snapshot")
}

func TestCanPerformAction_StaleList(t *testing.T) {
	engine := newEngine(t)
	wizard := testutils.CreateTestWizard("w", 1)

	list := engine.GetAvailableActions(wizard)
	last, ok := list[len(list)-1].(action.CastSpell)
	require.True(t, ok)
	require.True(t, engine.CanPerformAction(wizard, last))

	require.True(t, wizard.Resources.UseSpellSlot(1))
	assert.False(t, engine.CanPerformAction(wizard, last), "slot spent after enumeration")
}

func TestCanPerform_NilCharacter(t *testing.T) {
	assert.False(t, actions.CanPerform(nil, action.Attack{Base: available("Unarmed Strike")}))
}
