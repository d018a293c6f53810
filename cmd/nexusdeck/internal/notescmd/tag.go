// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notescmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexuscommand/nexusdeck/pkg/notes"
)

func newTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tag <message-id> <decision|action|idea>",
		Short: "Tag a message (replaces any existing tag)",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTag(args[0], args[1])
		},
	}
}

func newUntagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "untag <message-id>",
		Short: "Remove a message's tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runUntag(args[0])
		},
	}
}

func runTag(id, name string) error {
	tag, err := notes.ParseTag(name)
	if err != nil {
		return fmt.Errorf("%w (valid tags: decision, action, idea)", err)
	}

	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	store.SetTag(id, tag)
	fmt.Printf("[%s] %s\n", tag, id)
	return nil
}

func runUntag(id string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := store.Tag(id); !ok {
		fmt.Printf("%s has no tag.\n", id)
		return nil
	}
	store.ClearTag(id)
	fmt.Printf("Untagged %s\n", id)
	return nil
}
