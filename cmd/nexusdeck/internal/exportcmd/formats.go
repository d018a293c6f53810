// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package exportcmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexuscommand/nexusdeck/pkg/export"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the supported export formats",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, f := range export.Formats() {
				fmt.Println(f.String())
			}
			return nil
		},
	}
}
