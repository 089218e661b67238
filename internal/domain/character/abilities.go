package character

// AbilityType controls how an ability's uses gate availability
type AbilityType string

const (
	// AbilityTypeEncounter abilities have a limited number of uses
	AbilityTypeEncounter AbilityType = "encounter"

	// AbilityTypeAtWill abilities ignore their use count entirely
	AbilityTypeAtWill AbilityType = "at-will"
)

// Ability is a class resource usable in combat
type Ability struct {
	Name        string      `json:"name"`
	Type        AbilityType `json:"type"`
	MaxUses     int         `json:"max_uses"`
	CurrentUses int         `json:"current_uses"`
	Description string      `json:"description"`
}

// IsAtWill reports whether uses are ignored for this ability
func (a *Ability) IsAtWill() bool {
	return a.Type == AbilityTypeAtWill
}

// CanUse checks if the ability can be used
func (a *Ability) CanUse() bool {
	if a.IsAtWill() {
		return true
	}
	return a.CurrentUses > 0
}

// Use consumes one use; at-will abilities are never decremented
func (a *Ability) Use() bool {
	if !a.CanUse() {
		return false
	}
	if !a.IsAtWill() {
		a.CurrentUses--
	}
	return true
}

// Restore refills uses to the maximum
func (a *Ability) Restore() {
	a.CurrentUses = a.MaxUses
}
