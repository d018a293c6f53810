// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package exportcmd

import (
	"github.com/spf13/cobra"
)

func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved transcript messages to share formats",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newMessageCommand())
	cmd.AddCommand(newFormatsCommand())
	return cmd
}
