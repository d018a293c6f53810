// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notescmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all pins and tags",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList()
		},
	}
}

func runList() error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	snap := store.Snapshot()

	if len(snap.Pins) == 0 && len(snap.Tags) == 0 {
		fmt.Println("No pins or tags recorded.")
		return nil
	}

	if len(snap.Pins) > 0 {
		fmt.Printf("Pinned (%d):\n", len(snap.Pins))
		for _, id := range snap.Pins {
			fmt.Printf("  📌 %s\n", id)
		}
	}

	if len(snap.Tags) > 0 {
		if len(snap.Pins) > 0 {
			fmt.Println()
		}
		ids := make([]string, 0, len(snap.Tags))
		for id := range snap.Tags {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Printf("Tagged (%d):\n", len(snap.Tags))
		for _, id := range ids {
			fmt.Printf("  [%s] %s\n", snap.Tags[id], id)
		}
	}

	return nil
}
