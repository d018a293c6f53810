// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package tui

import (
	"os"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nexuscommand/nexusdeck/pkg/export"
	"github.com/nexuscommand/nexusdeck/pkg/markdown"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// copyCmd writes text to the terminal clipboard via an OSC 52 escape
// sequence. The sequence goes to stderr so it bypasses the bubbletea
// renderer; terminals that don't support OSC 52 ignore it.
func copyCmd(text, label string) tea.Cmd {
	return func() tea.Msg {
		_, err := osc52.New(text).WriteTo(os.Stderr)
		return copyDoneMsg{Label: label, Err: err}
	}
}

// copyPlainCmd copies the message with markdown syntax stripped.
func copyPlainCmd(md string) tea.Cmd {
	return copyCmd(markdown.ToPlainText(md), "plain text")
}

// exportCmd writes the selected message as an artifact off the update loop.
func (m Model) exportCmd(msg transcript.Message, f export.Format) tea.Cmd {
	ex := m.exporter
	return func() tea.Msg {
		path, err := ex.Export(msg, f)
		return exportDoneMsg{Format: f, Path: path, Err: err}
	}
}
