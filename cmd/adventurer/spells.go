package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
)

func newSpellsCmd(a *app) *cobra.Command {
	var tier int

	cmd := &cobra.Command{
		Use:   "spells [class]",
		Short: "List a class spell list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, ok := character.ParseClass(args[0])
			if !ok {
				return fmt.Errorf("unknown class %q (choose from %s)", args[0], classList())
			}

			out := cmd.OutOrStdout()
			spells := a.provider.Spells.SpellsFor(class, tier)
			if len(spells) == 0 {
				fmt.Fprintf(out, "%s has no level %d spells.\n", class, tier)
				return nil
			}

			for _, s := range spells {
				kind := "-"
				if s.Effect != nil {
					kind = string(s.Effect.Kind())
				}
				fmt.Fprintf(out, "%-16s %-18s %-13s %s\n", s.ID, s.Name, s.School, kind)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&tier, "tier", 0, "spell level (0 for cantrips)")
	return cmd
}
