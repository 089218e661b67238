package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/action"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/loot"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/services/combat"
)

func newActionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "actions [character-id]",
		Short: "List the actions a character can take",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			available, err := a.provider.CombatService.ListActions(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printActions(cmd.OutOrStdout(), available)
			return nil
		},
	}
}

func newActCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "act [character-id] [action name]",
		Short: "Perform an action by name, e.g. act <id> Second Wind",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			available, err := a.provider.CombatService.ListActions(ctx, args[0])
			if err != nil {
				return err
			}

			name := strings.Join(args[1:], " ")
			chosen, ok := findAction(available, name)
			if !ok {
				return fmt.Errorf("no action named %q; run 'adventurer actions %s'", name, args[0])
			}

			result, err := a.provider.CombatService.PerformAction(ctx, &combat.PerformActionInput{
				CharacterID: args[0],
				Action:      chosen,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !result.Success {
				fmt.Fprintf(out, "Cannot %s: %s\n", chosen.Common().Name, result.Message)
				return nil
			}

			fmt.Fprintln(out, result.Message)
			switch chosen.(type) {
			case action.UseAbility:
				if ability, ok := result.Character.Resources.FindAbility(chosen.Common().Name); ok && !ability.IsAtWill() {
					fmt.Fprintf(out, "%d uses remaining\n", result.UsesRemaining)
				}
			case action.CastSpell:
				if result.Character.Resources.HasSpellSlots() {
					fmt.Fprintf(out, "%d level 1 slots remaining\n", result.SlotsRemaining)
				}
			}
			return nil
		},
	}
}

func newLootCmd(a *app) *cobra.Command {
	var rolls int

	cmd := &cobra.Command{
		Use:   "loot [table-id]",
		Short: "Roll a loot table, or list tables when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, id := range a.tables.LootTableIDs() {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			for i := 0; i < rolls; i++ {
				fmt.Fprintln(out, loot.FormatLootMessage(a.provider.Loot.RollLoot(args[0])))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rolls, "rolls", 1, "number of times to roll")
	return cmd
}

func newDefeatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defeat [character-id] [loot-table-id]",
		Short: "Resolve a defeated enemy's loot into a character's purse and pack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.provider.CombatService.ResolveDefeat(cmd.Context(), &combat.ResolveDefeatInput{
				CharacterID: args[0],
				LootTableID: args[1],
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}

func newRestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rest [character-id]",
		Short: "Take a long rest, restoring abilities and spell slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			char, err := a.provider.CombatService.Rest(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s is fully rested.\n\n", char.Name)
			printSheet(out, char)
			return nil
		},
	}
}

// findAction matches an action by name, ignoring case
func findAction(available []action.Action, name string) (action.Action, bool) {
	for _, a := range available {
		if strings.EqualFold(a.Common().Name, strings.TrimSpace(name)) {
			return a, true
		}
	}
	return nil, false
}

func printActions(out io.Writer, available []action.Action) {
	for i, a := range available {
		base := a.Common()
		line := fmt.Sprintf("%2d. %s", i+1, base.Name)
		if base.Description != "" {
			line += " - " + base.Description
		}
		if base.Disabled {
			line += fmt.Sprintf(" [%s]", base.DisabledReason)
		}
		fmt.Fprintln(out, line)
	}
}
