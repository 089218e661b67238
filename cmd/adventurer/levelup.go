package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/rules/progression"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/services/levelup"
)

func newLevelUpCmd(a *app) *cobra.Command {
	var (
		spellIDs []string
		preview  bool
	)

	cmd := &cobra.Command{
		Use:   "levelup [character-id] [new-level]",
		Short: "Level a character up, learning the chosen spells",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newLevel, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("new level must be a number: %w", err)
			}

			out := cmd.OutOrStdout()
			if preview {
				result, err := a.provider.LevelUpService.Preview(cmd.Context(), args[0], newLevel)
				if err != nil {
					return err
				}
				printLearning(out, newLevel, result.Learning)
				return nil
			}

			char, err := a.provider.LevelUpService.Commit(cmd.Context(), &levelup.CommitInput{
				CharacterID: args[0],
				NewLevel:    newLevel,
				SpellIDs:    spellIDs,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s reached level %d.\n\n", char.Name, char.Level)
			printSheet(out, char)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&spellIDs, "spell", nil, "spell id to learn (repeatable)")
	cmd.Flags().BoolVar(&preview, "preview", false, "show the spells on offer without leveling up")
	return cmd
}

func printLearning(out io.Writer, newLevel int, learning *progression.LearningResult) {
	if learning == nil {
		fmt.Fprintf(out, "No spells to learn at level %d.\n", newLevel)
		return
	}

	fmt.Fprintf(out, "Choose up to %d level %d spells:\n", learning.SpellsToSelect, learning.SpellLevel)
	for _, s := range learning.AvailableSpells {
		fmt.Fprintf(out, "  %-16s %s\n", s.ID, s.Name)
	}
}
