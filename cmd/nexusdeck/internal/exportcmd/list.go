// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package exportcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexuscommand/nexusdeck/pkg/roster"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

func newListCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the messages in a saved transcript",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(file)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Transcript JSON file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runList(file string) error {
	t, err := transcript.Load(file)
	if err != nil {
		return fmt.Errorf("loading transcript: %w", err)
	}

	reg := roster.Default()

	fmt.Printf("%-10s %-6s %-10s %-17s %s\n", "ID", "ROLE", "AGENT", "TIME", "PREVIEW")
	for _, msg := range t.Messages {
		agent := ""
		if msg.IsAI() {
			agent = reg.Resolve(msg.Agent).Name
		}
		fmt.Printf("%-10s %-6s %-10s %-17s %s\n",
			msg.ShortID(),
			msg.Role.String(),
			agent,
			msg.Timestamp.Format("2006-01-02 15:04"),
			preview(msg.Content, 48),
		)
	}
	fmt.Printf("\n%d messages\n", t.Len())
	return nil
}

// preview returns the first line of content, truncated for table display
func preview(content string, max int) string {
	line := content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	runes := []rune(line)
	if len(runes) <= max {
		return line
	}
	return string(runes[:max-1]) + "…"
}
