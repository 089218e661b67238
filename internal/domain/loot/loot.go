package loot

import "github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/equipment"

// EntryType is what a loot entry produces when it fires
type EntryType string

const (
	EntryTypeGold   EntryType = "gold"
	EntryTypeItem   EntryType = "item"
	EntryTypeWeapon EntryType = "weapon"
	EntryTypeArmor  EntryType = "armor"
)

// ItemType maps a non-gold entry type onto an inventory item type
func (t EntryType) ItemType() (equipment.ItemType, bool) {
	switch t {
	case EntryTypeItem:
		return equipment.ItemTypeItem, true
	case EntryTypeWeapon:
		return equipment.ItemTypeWeapon, true
	case EntryTypeArmor:
		return equipment.ItemTypeArmor, true
	}
	return "", false
}

// GoldRange is an inclusive range of gold pieces
type GoldRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Entry is one independent drop rule
type Entry struct {
	Type      EntryType  `json:"type"`
	Chance    float64    `json:"chance"` // 0.0 to 1.0
	GoldRange *GoldRange `json:"gold_range,omitempty"`
	ItemID    string     `json:"item_id,omitempty"`
	Quantity  int        `json:"quantity,omitempty"` // 0 means 1
}

// Table is an ordered list of entries, each rolled independently
type Table struct {
	ID      string  `json:"id"`
	Entries []Entry `json:"entries"`
}

// Drop is one item or gold amount produced by a roll
type Drop struct {
	Type     EntryType `json:"type"`
	Amount   int       `json:"amount,omitempty"`
	ItemID   string    `json:"item_id,omitempty"`
	Quantity int       `json:"quantity,omitempty"`
}

// IsGold reports whether the drop is currency
func (d Drop) IsGold() bool {
	return d.Type == EntryTypeGold
}
