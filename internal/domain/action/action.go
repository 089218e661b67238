package action

// Kind tags the action variants
type Kind string

const (
	KindAttack     Kind = "attack"
	KindCastSpell  Kind = "cast_spell"
	KindUseAbility Kind = "use_ability"
	KindUseItem    Kind = "use_item"
)

// Base carries the fields every action has
// Available and Disabled are only valid for the character snapshot the action
// was computed from
type Base struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Available      bool   `json:"available"`
	Disabled       bool   `json:"disabled,omitempty"`
	DisabledReason string `json:"disabled_reason,omitempty"`
}

// Action is one of Attack, CastSpell, UseAbility or UseItem
type Action interface {
	Kind() Kind
	Common() Base
	isAction()
}

// Attack is a weapon attack, optionally a variant with modifiers relative to the baseline
type Attack struct {
	Base
	WeaponID       string `json:"weapon_id,omitempty"`
	Variant        string `json:"variant,omitempty"`
	AttackModifier int    `json:"attack_modifier"`
	DamageModifier int    `json:"damage_modifier"`
}

// CastSpell casts a specific cantrip or any spell of SpellLevel
type CastSpell struct {
	Base
	SpellID      string `json:"spell_id,omitempty"`
	SpellLevel   int    `json:"spell_level"`
	RequiresSlot bool   `json:"requires_slot"`
}

// UseAbility uses a named class ability
type UseAbility struct {
	Base
	AbilityName   string `json:"ability_name"`
	UsesRemaining int    `json:"uses_remaining"`
	MaxUses       int    `json:"max_uses"`
}

// UseItem uses an inventory item
type UseItem struct {
	Base
	ItemID string `json:"item_id"`
}

func (a Attack) Kind() Kind     { return KindAttack }
func (a CastSpell) Kind() Kind  { return KindCastSpell }
func (a UseAbility) Kind() Kind { return KindUseAbility }
func (a UseItem) Kind() Kind    { return KindUseItem }

func (a Attack) Common() Base     { return a.Base }
func (a CastSpell) Common() Base  { return a.Base }
func (a UseAbility) Common() Base { return a.Base }
func (a UseItem) Common() Base    { return a.Base }

func (Attack) isAction()     {}
func (CastSpell) isAction()  {}
func (UseAbility) isAction() {}
func (UseItem) isAction()    {}

// Disable marks the action unavailable with a reason for display
func (b *Base) Disable(reason string) {
	b.Available = false
	b.Disabled = true
	b.DisabledReason = reason
}
