package equipment

import (
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/dice"
)

// UnarmedStrikeName is used for the baseline attack when nothing is equipped
const UnarmedStrikeName = "Unarmed Strike"

// UnarmedDamage is the flat damage of an unarmed strike
var UnarmedDamage = dice.Expression{Bonus: 1}

// Weapon is an equippable weapon
type Weapon struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Damage     dice.Expression `json:"damage"`
	DamageType string          `json:"damage_type"`
}

// GetName returns the display name, falling back to the key
func (w *Weapon) GetName() string {
	if w == nil {
		return UnarmedStrikeName
	}
	if w.Name != "" {
		return w.Name
	}
	return w.ID
}

// GetKey returns the weapon identifier
func (w *Weapon) GetKey() string {
	if w == nil {
		return ""
	}
	return w.ID
}

// Clone returns a copy that shares nothing with w
func (w *Weapon) Clone() *Weapon {
	if w == nil {
		return nil
	}
	c := *w
	return &c
}
