// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notescmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every pin and tag",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runClear(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}

func runClear(force bool) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	snap := store.Snapshot()
	if len(snap.Pins) == 0 && len(snap.Tags) == 0 {
		fmt.Println("Nothing to clear.")
		return nil
	}

	if !force {
		fmt.Printf("This removes %d pins and %d tags. Continue? [y/N] ", len(snap.Pins), len(snap.Tags))
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	for _, id := range snap.Pins {
		store.TogglePin(id)
	}
	for id := range snap.Tags {
		store.ClearTag(id)
	}

	fmt.Printf("Cleared %d pins and %d tags.\n", len(snap.Pins), len(snap.Tags))
	return nil
}
