// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// openPanel swaps the side panel in and narrows the transcript viewport.
func (m *Model) openPanel(p panelState, title, body string) {
	m.panel = p
	m.panelTitle = title
	m.panelBody = body
	m.viewport.Width = m.contentWidth()
	m.updateViewport(false)
}

func (m *Model) closePanel() {
	m.panel = panelNone
	m.panelTitle = ""
	m.panelBody = ""
	m.viewport.Width = m.contentWidth()
	m.updateViewport(false)
}

// openDigestPanel shows heuristic highlights and the short summary for the
// selected message.
func (m *Model) openDigestPanel(msg transcript.Message) {
	highlights := m.digest.Highlights(msg.ID, msg.Content)
	summary := m.digest.Summary(msg.ID, msg.Content)

	var sb strings.Builder
	if len(highlights) == 0 {
		sb.WriteString("No highlights for this message.\n")
	} else {
		for _, h := range highlights {
			sb.WriteString("• ")
			sb.WriteString(h)
			sb.WriteString("\n")
		}
	}
	if summary != "" {
		sb.WriteString("\nSummary\n")
		sb.WriteString(summary)
		sb.WriteString("\n")
	}

	m.openPanel(panelDigest, "Highlights — "+msg.ShortID(), sb.String())
}

// openSessionPanel shows a whole-session rollup: turn counts per agent,
// pinned messages, tag counts.
func (m *Model) openSessionPanel() {
	var sb strings.Builder

	human, ai := 0, 0
	agentTurns := map[string]int{}
	agentOrder := []string{}
	for _, msg := range m.transcript.Messages {
		if msg.IsAI() {
			ai++
			name := m.registry.Resolve(msg.Agent).Name
			if _, seen := agentTurns[name]; !seen {
				agentOrder = append(agentOrder, name)
			}
			agentTurns[name]++
		} else {
			human++
		}
	}
	sb.WriteString(fmt.Sprintf("Turns: %d from you, %d from agents\n", human, ai))
	for _, name := range agentOrder {
		sb.WriteString(fmt.Sprintf("  %s ×%d\n", name, agentTurns[name]))
	}

	pinned := m.notes.Pinned()
	sb.WriteString(fmt.Sprintf("\nPinned (%d)\n", len(pinned)))
	for _, id := range pinned {
		if msg, ok := m.transcript.ByID(id); ok {
			sb.WriteString("  📌 " + truncateLine(firstLine(msg.Content), 40) + "\n")
		}
	}

	tagCounts := map[string]int{}
	for _, tag := range m.notes.Tags() {
		tagCounts[tag.String()]++
	}
	if len(tagCounts) > 0 {
		sb.WriteString("\nTags\n")
		for _, name := range []string{"decision", "action", "idea"} {
			if n := tagCounts[name]; n > 0 {
				sb.WriteString(fmt.Sprintf("  [%s] ×%d\n", name, n))
			}
		}
	}

	m.openPanel(panelSession, "Session summary", sb.String())
}

// openSettingsPanel shows the resolved configuration, read-only.
func (m *Model) openSettingsPanel() {
	var sb strings.Builder
	for _, line := range m.settingsLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\nEdit ~/.nexusdeck/config.json and restart to change.\n")
	m.openPanel(panelSettings, "Settings", sb.String())
}

// openHelpPanel lists the key bindings.
func (m *Model) openHelpPanel() {
	groups := []struct {
		title string
		keys  []key.Binding
	}{
		{"Navigate", []key.Binding{m.keys.PrevMessage, m.keys.NextMessage, m.keys.PageUp, m.keys.PageDown, m.keys.FocusInput, m.keys.Escape}},
		{"Message", []key.Binding{m.keys.CopyMarkdown, m.keys.CopyPlain, m.keys.ExportHTML, m.keys.ExportPDF, m.keys.ExportText, m.keys.ExportMD}},
		{"Annotate", []key.Binding{m.keys.TogglePin, m.keys.TagDecision, m.keys.TagAction, m.keys.TagIdea, m.keys.ClearTag}},
		{"Panels", []key.Binding{m.keys.Digest, m.keys.SessionSummary, m.keys.Settings, m.keys.CleanView, m.keys.Timeline}},
		{"Session", []key.Binding{m.keys.CancelTurn, m.keys.Quit}},
	}

	var sb strings.Builder
	for _, g := range groups {
		sb.WriteString(g.title + "\n")
		for _, b := range g.keys {
			h := b.Help()
			sb.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
		sb.WriteString("\n")
	}
	m.openPanel(panelHelp, "Keys", sb.String())
}

// renderPanel draws the open side panel sized to the viewport.
func (m Model) renderPanel() string {
	width := m.panelWidth()
	maxLines := m.viewport.Height - 4
	if maxLines < 1 {
		maxLines = 1
	}

	lines := strings.Split(strings.TrimRight(m.panelBody, "\n"), "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], m.styles.Muted.Render("…"))
	}
	body := m.styles.PanelTitle.Render(m.panelTitle) + "\n\n" + strings.Join(lines, "\n")

	return m.styles.Panel.Width(width - 2).Render(body)
}

// firstLine returns the first non-empty line of a message body.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#*->• "))
		if line != "" {
			return line
		}
	}
	return s
}
