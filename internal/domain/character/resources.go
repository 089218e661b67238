package character

import (
	"fmt"
	"maps"
	"slices"
)

// SlotPool tracks spell slots of one spell level
type SlotPool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// SlotKey returns the map key for a spell level ("level0", "level1", ...)
func SlotKey(level int) string {
	return fmt.Sprintf("level%d", level)
}

// Resources tracks all expendable resources
type Resources struct {
	Abilities []Ability `json:"abilities"`

	// SpellSlots is nil for classes that do not cast
	SpellSlots map[string]SlotPool `json:"spell_slots,omitempty"`
}

// HasSpellSlots reports whether the character casts at all
func (r *Resources) HasSpellSlots() bool {
	return r.SpellSlots != nil
}

// Slot returns the slot pool for a spell level
func (r *Resources) Slot(level int) (SlotPool, bool) {
	if r.SpellSlots == nil {
		return SlotPool{}, false
	}
	pool, ok := r.SpellSlots[SlotKey(level)]
	return pool, ok
}

// UseSpellSlot consumes a slot of the given level
func (r *Resources) UseSpellSlot(level int) bool {
	pool, ok := r.Slot(level)
	if !ok || pool.Current <= 0 {
		return false
	}

	pool.Current--
	r.SpellSlots[SlotKey(level)] = pool
	return true
}

// FindAbility looks an ability up by name
func (r *Resources) FindAbility(name string) (*Ability, bool) {
	for i := range r.Abilities {
		if r.Abilities[i].Name == name {
			return &r.Abilities[i], true
		}
	}
	return nil, false
}

// LongRest restores every ability and every slot pool
func (r *Resources) LongRest() {
	for i := range r.Abilities {
		r.Abilities[i].Restore()
	}

	for key, pool := range r.SpellSlots {
		pool.Current = pool.Max
		r.SpellSlots[key] = pool
	}
}

func (r Resources) clone() Resources {
	out := Resources{
		Abilities: slices.Clone(r.Abilities),
	}
	if r.SpellSlots != nil {
		out.SpellSlots = maps.Clone(r.SpellSlots)
	}
	return out
}
