package testutils

import (
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
)

// CreateTestWeapon creates a weapon with the given damage notation
func CreateTestWeapon(id, name, damage string) *equipment.Weapon {
	return &equipment.Weapon{
		ID:         id,
		Name:       name,
		Damage:     dice.MustParse(damage),
		DamageType: "slashing",
	}
}

// CreateTestCharacter creates a level 1 character with no resources
func CreateTestCharacter(id, name string, class character.Class) *character.Character {
	return &character.Character{
		ID:          id,
		Name:        name,
		Class:       class,
		Level:       1,
		KnownSpells: []string{},
		Inventory:   []equipment.InventoryItem{},
	}
}

// CreateTestFighter creates a fighter with a longsword and the fighter abilities
func CreateTestFighter(id string) *character.Character {
	char := CreateTestCharacter(id, "Test Fighter", character.ClassFighter)
	char.Equipment.Weapon = CreateTestWeapon("longsword", "Longsword", "1d8")
	char.Resources.Abilities = []character.Ability{
		{Name: "Second Wind", Type: character.AbilityTypeEncounter, MaxUses: 1, CurrentUses: 1},
		{Name: "Action Surge", Type: character.AbilityTypeEncounter, MaxUses: 1, CurrentUses: 1},
	}
	return char
}

// CreateTestRogue creates a rogue with one at-will and one limited ability
func CreateTestRogue(id string) *character.Character {
	char := CreateTestCharacter(id, "Test Rogue", character.ClassRogue)
	char.Equipment.Weapon = CreateTestWeapon("shortsword", "Shortsword", "1d6")
	char.Resources.Abilities = []character.Ability{
		{Name: "Sneak Attack", Type: character.AbilityTypeAtWill},
		{Name: "Tumble", Type: character.AbilityTypeEncounter, MaxUses: 2, CurrentUses: 2},
	}
	return char
}

// CreateTestWizard creates a wizard with full level-1 slots
func CreateTestWizard(id string, slots int) *character.Character {
	char := CreateTestCharacter(id, "Test Wizard", character.ClassWizard)
	char.Equipment.Weapon = CreateTestWeapon("quarterstaff", "Quarterstaff", "1d6")
	char.Resources.Abilities = []character.Ability{
		{Name: "Arcane Recovery", Type: character.AbilityTypeEncounter, MaxUses: 1, CurrentUses: 1},
	}
	char.Resources.SpellSlots = map[string]character.SlotPool{
		character.SlotKey(1): {Current: slots, Max: slots},
	}
	return char
}

// CreateTestCleric creates a cleric with full level-1 slots
func CreateTestCleric(id string, slots int) *character.Character {
	char := CreateTestCharacter(id, "Test Cleric", character.ClassCleric)
	char.Equipment.Weapon = CreateTestWeapon("mace", "Mace", "1d6")
	char.Resources.Abilities = []character.Ability{
		{Name: "Turn Undead", Type: character.AbilityTypeEncounter, MaxUses: 1, CurrentUses: 1},
	}
	char.Resources.SpellSlots = map[string]character.SlotPool{
		character.SlotKey(1): {Current: slots, Max: slots},
	}
	return char
}
