// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notescmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexuscommand/nexusdeck/cmd/nexusdeck/internal"
	"github.com/nexuscommand/nexusdeck/pkg/notes"
)

func NewNotesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Inspect and edit pins and tags outside the console",
		Long: "Inspect and edit pins and tags outside the console.\n\n" +
			"Message IDs come from 'nexusdeck export list --file <transcript>'.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newPinCommand())
	cmd.AddCommand(newUnpinCommand())
	cmd.AddCommand(newTagCommand())
	cmd.AddCommand(newUntagCommand())
	cmd.AddCommand(newClearCommand())
	return cmd
}

// openStore loads the persistent annotation store. The memory backend holds
// nothing between processes, so it is refused here rather than silently
// accepting edits that vanish.
func openStore() (*notes.Store, func(), error) {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.Notes.Backend == "memory" {
		return nil, nil, fmt.Errorf("notes backend is \"memory\"; nothing persists outside a chat session")
	}

	backend, err := internal.OpenNotesBackend(cfg, internal.Paths())
	if err != nil {
		return nil, nil, fmt.Errorf("opening notes backend: %w", err)
	}

	cleanup := func() {}
	if closer, ok := backend.(interface{ Close() error }); ok {
		cleanup = func() { _ = closer.Close() }
	}

	return notes.NewStore(backend), cleanup, nil
}
