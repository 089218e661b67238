package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// displayName derives a name from an identifier such as "mage_armor"
func displayName(id string) string {
	return cases.Title(language.English).String(strings.NewReplacer("_", " ", "-", " ").Replace(id))
}
