// Package main is the entry point for the adventurer command line
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{}
	err := newRootCmd(a).ExecuteContext(ctx)
	stop()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	a.close(closeCtx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "adventurer",
		Short: "Adventurer rules engine",
		Long: `Adventurer creates characters and runs combat turns, loot drops and level ups
against the rules engine. Characters are stored according to STORE (memory, redis
or sqlite); the memory store does not outlive a single command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
	}

	root.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newShowCmd(a),
		newDeleteCmd(a),
		newActionsCmd(a),
		newActCmd(a),
		newLootCmd(a),
		newDefeatCmd(a),
		newRestCmd(a),
		newLevelUpCmd(a),
		newSpellsCmd(a),
	)

	return root
}
