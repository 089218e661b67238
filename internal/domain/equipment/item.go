package equipment

// ItemType distinguishes inventory entries
type ItemType string

const (
	ItemTypeItem   ItemType = "item"
	ItemTypeWeapon ItemType = "weapon"
	ItemTypeArmor  ItemType = "armor"
)

// InventoryItem is a stack of identical items carried by a character
type InventoryItem struct {
	ItemID   string   `json:"item_id"`
	Type     ItemType `json:"type"`
	Quantity int      `json:"quantity"`
}
