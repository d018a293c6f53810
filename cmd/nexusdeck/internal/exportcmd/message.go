// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package exportcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexuscommand/nexusdeck/cmd/nexusdeck/internal"
	"github.com/nexuscommand/nexusdeck/pkg/export"
	"github.com/nexuscommand/nexusdeck/pkg/roster"
	"github.com/nexuscommand/nexusdeck/pkg/theme"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

func newMessageCommand() *cobra.Command {
	var (
		file         string
		id           string
		format       string
		outDir       string
		confidential bool
		pageSize     string
	)

	cmd := &cobra.Command{
		Use:   "message",
		Short: "Export one message to html, pdf, txt, md, or all",
		RunE: func(cmd *cobra.Command, _ []string) error {
			confOverride := cmd.Flags().Changed("confidential")
			return runMessage(file, id, format, outDir, pageSize, confidential, confOverride)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Transcript JSON file")
	cmd.Flags().StringVar(&id, "id", "", "Message ID (a unique prefix is enough)")
	cmd.Flags().StringVar(&format, "format", "all", "Export format: html, pdf, txt, md, all")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default: configured export dir)")
	cmd.Flags().BoolVar(&confidential, "confidential", false, "Stamp the confidential footer")
	cmd.Flags().StringVar(&pageSize, "page-size", "", "PDF page size: A4 or Letter")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func runMessage(file, id, format, outDir, pageSize string, confidential, confOverride bool) error {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	t, err := transcript.Load(file)
	if err != nil {
		return fmt.Errorf("loading transcript: %w", err)
	}

	msg, err := findMessage(t, id)
	if err != nil {
		return err
	}

	formats, err := resolveFormats(format)
	if err != nil {
		return err
	}

	// Flags win over config; unset flags fall back to configured values
	if outDir == "" {
		outDir = cfg.ExportDir()
	}
	if pageSize == "" {
		pageSize = cfg.Export.PageSize
	}
	if !confOverride {
		confidential = cfg.Export.Confidential
	}

	exporter := export.New(outDir, theme.ByName(cfg.UI.Theme), roster.Default(),
		export.WithConfidential(confidential),
		export.WithPageSize(pageSize),
	)

	for _, f := range formats {
		path, err := exporter.Export(msg, f)
		if err != nil {
			return fmt.Errorf("exporting %s: %w", f, err)
		}
		fmt.Printf("✓ %s\n", path)
	}
	return nil
}

// findMessage resolves a full message ID or a unique prefix
func findMessage(t *transcript.Transcript, id string) (transcript.Message, error) {
	if msg, ok := t.ByID(id); ok {
		return msg, nil
	}

	var matches []transcript.Message
	for _, msg := range t.Messages {
		if strings.HasPrefix(msg.ID, id) {
			matches = append(matches, msg)
		}
	}

	switch len(matches) {
	case 0:
		return transcript.Message{}, fmt.Errorf("no message with ID %q", id)
	case 1:
		return matches[0], nil
	default:
		return transcript.Message{}, fmt.Errorf("ID prefix %q matches %d messages; use more characters", id, len(matches))
	}
}

func resolveFormats(name string) ([]export.Format, error) {
	if name == "all" {
		return export.Formats(), nil
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return []export.Format{f}, nil
}
