package character_test

import (
	"testing"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWizard() *character.Character {
	return &character.Character{
		ID:    "wiz-1",
		Name:  "Elminster",
		Class: character.ClassWizard,
		Level: 1,
		Resources: character.Resources{
			Abilities: []character.Ability{
				{Name: "Arcane Recovery", Type: character.AbilityTypeEncounter, MaxUses: 1, CurrentUses: 1},
			},
			SpellSlots: map[string]character.SlotPool{"level1": {Current: 2, Max: 2}},
		},
		KnownSpells: []string{"fire_bolt"},
		Equipment: character.Equipment{
			Weapon: &equipment.Weapon{ID: "quarterstaff", Name: "Quarterstaff", Damage: dice.MustParse("1d6")},
		},
	}
}

func TestCharacter_Clone_IsDeep(t *testing.T) {
	original := newWizard()
	clone := original.Clone()
	require.Equal(t, original, clone)

	clone.Resources.Abilities[0].CurrentUses = 0
	clone.Resources.SpellSlots["level1"] = character.SlotPool{Current: 0, Max: 2}
	clone.KnownSpells[0] = "ray_of_frost"
	clone.Equipment.Weapon.Name = "Staff of Power"
	clone.AddItem(equipment.ItemTypeItem, "torch", 1)

	assert.Equal(t, 1, original.Resources.Abilities[0].CurrentUses)
	assert.Equal(t, 2, original.Resources.SpellSlots["level1"].Current)
	assert.Equal(t, "fire_bolt", original.KnownSpells[0])
	assert.Equal(t, "Quarterstaff", original.Equipment.Weapon.Name)
	assert.Empty(t, original.Inventory)
}

func TestCharacter_Clone_KeepsNilSpellSlots(t *testing.T) {
	fighter := &character.Character{Class: character.ClassFighter}

	clone := fighter.Clone()

	assert.Nil(t, clone.Resources.SpellSlots)
	assert.False(t, clone.Resources.HasSpellSlots())
}

func TestCharacter_AddItem_Stacks(t *testing.T) {
	char := &character.Character{}

	char.AddItem(equipment.ItemTypeItem, "arrow", 20)
	char.AddItem(equipment.ItemTypeItem, "arrow", 5)
	char.AddItem(equipment.ItemTypeWeapon, "dagger", 1)
	char.AddItem(equipment.ItemTypeItem, "", 1)
	char.AddItem(equipment.ItemTypeItem, "rope", 0)

	assert.Equal(t, []equipment.InventoryItem{
		{ItemID: "arrow", Type: equipment.ItemTypeItem, Quantity: 25},
		{ItemID: "dagger", Type: equipment.ItemTypeWeapon, Quantity: 1},
	}, char.Inventory)
}

func TestCharacter_AddGold(t *testing.T) {
	char := &character.Character{Gold: 10}

	char.AddGold(15)
	char.AddGold(-5)

	assert.Equal(t, 25, char.Gold)
}

func TestCharacter_KnowsSpell(t *testing.T) {
	char := newWizard()

	assert.True(t, char.KnowsSpell("fire_bolt"))
	assert.False(t, char.KnowsSpell("magic_missile"))
}

func TestParseClass(t *testing.T) {
	c, ok := character.ParseClass(" wizard ")
	assert.True(t, ok)
	assert.Equal(t, character.ClassWizard, c)
	assert.Equal(t, "wizard", c.Key())

	_, ok = character.ParseClass("bard")
	assert.False(t, ok)
}
