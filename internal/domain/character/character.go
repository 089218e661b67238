package character

import (
	"slices"
	"time"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"
)

// Equipment holds what the character has equipped
type Equipment struct {
	// Weapon is nil when the character fights unarmed
	Weapon *equipment.Weapon `json:"weapon,omitempty"`
}

// Character is the caller-owned state the rules engines read
type Character struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class Class  `json:"class"`
	Level int    `json:"level"`

	Resources   Resources `json:"resources"`
	KnownSpells []string  `json:"known_spells"`
	Equipment   Equipment `json:"equipment"`

	// MechanicsLocked exposes optional combat mechanics such as variant attacks
	MechanicsLocked bool `json:"mechanics_locked"`

	Gold      int                       `json:"gold"`
	Inventory []equipment.InventoryItem `json:"inventory"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so callers can mutate without aliasing
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Resources = c.Resources.clone()
	out.KnownSpells = slices.Clone(c.KnownSpells)
	out.Inventory = slices.Clone(c.Inventory)
	out.Equipment.Weapon = c.Equipment.Weapon.Clone()
	return &out
}

// KnowsSpell checks the known spell list
func (c *Character) KnowsSpell(spellID string) bool {
	return slices.Contains(c.KnownSpells, spellID)
}

// AddGold credits gold, ignoring non-positive amounts
func (c *Character) AddGold(amount int) {
	if amount > 0 {
		c.Gold += amount
	}
}

// AddItem stacks quantity onto an existing inventory entry or appends a new one
func (c *Character) AddItem(itemType equipment.ItemType, itemID string, quantity int) {
	if itemID == "" || quantity <= 0 {
		return
	}

	for i := range c.Inventory {
		if c.Inventory[i].ItemID == itemID && c.Inventory[i].Type == itemType {
			c.Inventory[i].Quantity += quantity
			return
		}
	}

	c.Inventory = append(c.Inventory, equipment.InventoryItem{
		ItemID:   itemID,
		Type:     itemType,
		Quantity: quantity,
	})
}
