package cmd

import (
	"context"
	"fmt"

	"github.com/Vinyaaggarwal/Perry/internal/logging"
)

// ReconcileCmd removes hosts entries left by a session that did not exit cleanly
type ReconcileCmd struct{}

// Run executes the reconcile command
func (r *ReconcileCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing reconcile command")

	result, err := cli.Container.FocusController.ReconcileOnStartup(context.Background())
	if err != nil {
		return fmt.Errorf("failed to reconcile blocking: %w", err)
	}

	if len(result.Removed) == 0 {
		fmt.Println("No stale blocking found.")
		return nil
	}

	fmt.Printf("Removed %d stale blocked sites:\n", len(result.Removed))
	for _, d := range result.Removed {
		fmt.Printf("  %s\n", d)
	}
	return nil
}
