package character

import "strings"

// Class is a character class
type Class string

const (
	ClassFighter Class = "Fighter"
	ClassRogue   Class = "Rogue"
	ClassWizard  Class = "Wizard"
	ClassCleric  Class = "Cleric"
)

// Classes lists every supported class in display order
func Classes() []Class {
	return []Class{ClassFighter, ClassRogue, ClassWizard, ClassCleric}
}

// ParseClass matches a class name case-insensitively
func ParseClass(name string) (Class, bool) {
	for _, c := range Classes() {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, true
		}
	}
	return "", false
}

// Key returns the lower-case identifier used by content sources
func (c Class) Key() string {
	return strings.ToLower(string(c))
}

func (c Class) String() string {
	return string(c)
}
