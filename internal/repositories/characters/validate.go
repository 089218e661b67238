package characters

import (
	"cmp"
	"slices"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
)

func validate(char *character.Character) error {
	if char == nil {
		return rpgerr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}
	return nil
}

// sortByCreation drops nil entries and orders by creation time, then id
func sortByCreation(chars []*character.Character) []*character.Character {
	out := slices.DeleteFunc(chars, func(c *character.Character) bool { return c == nil })
	slices.SortFunc(out, func(a, b *character.Character) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}
