// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notescmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <message-id>",
		Short: "Pin a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPin(args[0])
		},
	}
}

func newUnpinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin <message-id>",
		Short: "Remove a pin",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runUnpin(args[0])
		},
	}
}

func runPin(id string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if store.IsPinned(id) {
		fmt.Printf("%s is already pinned.\n", id)
		return nil
	}
	store.TogglePin(id)
	fmt.Printf("📌 Pinned %s\n", id)
	return nil
}

func runUnpin(id string) error {
	store, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	if !store.IsPinned(id) {
		fmt.Printf("%s is not pinned.\n", id)
		return nil
	}
	store.TogglePin(id)
	fmt.Printf("Unpinned %s\n", id)
	return nil
}
