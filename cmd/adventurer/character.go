package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	charService "github.com/rhydlewis/adventurer-rpg-sub002/internal/services/character"
)

func newCreateCmd(a *app) *cobra.Command {
	var (
		name      string
		className string
		level     int
		mechanics bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a character from a class template",
		RunE: func(cmd *cobra.Command, args []string) error {
			class, ok := character.ParseClass(className)
			if !ok {
				return fmt.Errorf("unknown class %q (choose from %s)", className, classList())
			}

			char, err := a.provider.CharacterService.CreateCharacter(cmd.Context(), &charService.CreateCharacterInput{
				Name:            name,
				Class:           class,
				Level:           level,
				MechanicsLocked: mechanics,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s the %s (%s)\n\n", char.Name, char.Class, char.ID)
			printSheet(out, char)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "character name")
	cmd.Flags().StringVar(&className, "class", "", "character class ("+classList()+")")
	cmd.Flags().IntVar(&level, "level", 1, "starting level")
	cmd.Flags().BoolVar(&mechanics, "mechanics", false, "unlock optional combat mechanics such as variant attacks")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("class")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			chars, err := a.provider.CharacterService.ListCharacters(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(chars) == 0 {
				fmt.Fprintln(out, "No characters.")
				return nil
			}
			for _, char := range chars {
				fmt.Fprintf(out, "%s  %-20s %s %d\n", char.ID, char.Name, char.Class, char.Level)
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [character-id]",
		Short: "Show a character sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.provider.CharacterService.GetCharacter(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printSheet(cmd.OutOrStdout(), char)
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [character-id]",
		Short: "Delete a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.provider.CharacterService.DeleteCharacter(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}

func classList() string {
	names := make([]string, 0, len(character.Classes()))
	for _, c := range character.Classes() {
		names = append(names, c.Key())
	}
	return strings.Join(names, ", ")
}

func printSheet(out io.Writer, char *character.Character) {
	fmt.Fprintf(out, "%s - level %d %s\n", char.Name, char.Level, char.Class)
	fmt.Fprintf(out, "  ID:      %s\n", char.ID)
	fmt.Fprintf(out, "  Weapon:  %s\n", char.Equipment.Weapon.GetName())
	fmt.Fprintf(out, "  Gold:    %d\n", char.Gold)

	if len(char.Resources.Abilities) > 0 {
		fmt.Fprintln(out, "  Abilities:")
		for _, ability := range char.Resources.Abilities {
			if ability.IsAtWill() {
				fmt.Fprintf(out, "    %s (at will)\n", ability.Name)
				continue
			}
			fmt.Fprintf(out, "    %s (%d/%d)\n", ability.Name, ability.CurrentUses, ability.MaxUses)
		}
	}

	if char.Resources.HasSpellSlots() {
		keys := make([]string, 0, len(char.Resources.SpellSlots))
		for key := range char.Resources.SpellSlots {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Fprintln(out, "  Spell slots:")
		for _, key := range keys {
			pool := char.Resources.SpellSlots[key]
			fmt.Fprintf(out, "    %s: %d/%d\n", key, pool.Current, pool.Max)
		}
	}

	if len(char.KnownSpells) > 0 {
		fmt.Fprintf(out, "  Known spells: %s\n", strings.Join(char.KnownSpells, ", "))
	}

	if len(char.Inventory) > 0 {
		fmt.Fprintln(out, "  Inventory:")
		for _, item := range char.Inventory {
			fmt.Fprintf(out, "    %dx %s (%s)\n", item.Quantity, item.ItemID, item.Type)
		}
	}
}
