// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nexuscommand/nexusdeck/pkg/notes"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

const productName = "NEXUS COMMAND"

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Initializing...\n"
	}
	if m.view == welcomeView {
		return m.renderWelcome()
	}
	if m.cleanView {
		return m.renderCleanView()
	}

	header := m.renderHeader()
	sep := m.styles.Separator.Render(strings.Repeat("─", m.width))

	body := m.viewport.View()
	if m.panel != panelNone {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " "+m.renderPanel())
	}

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n%s",
		header,
		body,
		sep,
		m.textarea.View(),
		m.renderStatusBar(),
	)
}

// renderWelcome draws the landing screen: product header, roster cards, and
// the input form.
func (m Model) renderWelcome() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("◆ " + productName))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Tagline.Render("Your operations team of specialist agents"))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderRosterCards())
	sb.WriteString("\n")
	sb.WriteString(m.textarea.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Enter to send • Ctrl+C to quit"))
	sb.WriteString("\n")

	return sb.String()
}

// renderRosterCards lays the agent roster out as rows of cards.
func (m Model) renderRosterCards() string {
	profiles := m.registry.Profiles()
	if len(profiles) == 0 {
		return ""
	}

	perRow := m.width / 26
	if perRow < 1 {
		perRow = 1
	}
	if perRow > 4 {
		perRow = 4
	}
	cardWidth := m.width/perRow - 4
	if cardWidth < 18 {
		cardWidth = 18
	}
	if cardWidth > 34 {
		cardWidth = 34
	}

	var rows []string
	for start := 0; start < len(profiles); start += perRow {
		end := start + perRow
		if end > len(profiles) {
			end = len(profiles)
		}
		cards := make([]string, 0, perRow)
		for _, p := range profiles[start:end] {
			cards = append(cards, m.renderRosterCard(p.Badge, p.Name, p.Role, p.Blurb, p.Color, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRosterCard(badge, name, role, blurb, color string, width int) string {
	nameStyle := m.styles.RosterName.Foreground(lipgloss.Color(color))
	body := nameStyle.Render(badge+" "+name) + "\n" +
		m.styles.RosterRole.Render(role) + "\n" +
		m.styles.Muted.Render(truncateLine(blurb, width-2))
	return m.styles.RosterCard.Width(width).Render(body)
}

// renderCleanView shows only the selected message, no chrome.
func (m Model) renderCleanView() string {
	sel, ok := m.selectedMessage()
	if !ok {
		return m.styles.Muted.Render("Nothing selected") + "\n"
	}

	var sb strings.Builder
	if sel.IsAI() {
		profile := m.registry.Resolve(sel.Agent)
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(profile.Color)).Bold(true)
		sb.WriteString(label.Render(profile.Badge + " " + profile.Name))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderMarkdown(sel.Content))
	} else {
		sb.WriteString(m.styles.HumanLabel.Render("You"))
		sb.WriteString("\n\n")
		sb.WriteString(sel.Content)
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("Esc to return"))
	sb.WriteString("\n")
	return sb.String()
}

// renderMessage builds one transcript block: label line (selection marker,
// identity, timestamp, pin mark, tag chip) plus the body.
func (m Model) renderMessage(index int, msg transcript.Message) string {
	marker := "  "
	if m.focus == focusBrowse && index == m.selected {
		marker = m.styles.Selected.Render("▌ ")
	}

	var label string
	if msg.IsAI() {
		profile := m.registry.Resolve(msg.Agent)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(profile.Color)).Bold(true)
		label = style.Render(profile.Badge + " " + profile.Name)
	} else {
		label = m.styles.HumanLabel.Render("You")
	}

	meta := " " + m.styles.Timestamp.Render(msg.Timestamp.Format("15:04"))
	if m.notes.IsPinned(msg.ID) {
		meta += " " + m.styles.PinMark.Render("📌")
	}
	if tag, ok := m.notes.Tag(msg.ID); ok {
		meta += " " + m.tagStyle(tag).Render("["+tag.String()+"]")
	}

	body := msg.Content
	if msg.IsAI() {
		body = m.renderMarkdown(msg.Content)
	}

	return marker + label + meta + "\n" + body
}

// renderThinkingBlock shows the in-flight turn: agent label, live timeline,
// spinner.
func (m Model) renderThinkingBlock() string {
	profile := m.registry.Resolve(m.thinkingAgent)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(profile.Color)).Bold(true)

	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(style.Render(profile.Badge + " " + profile.Name))
	sb.WriteString(m.styles.Thinking.Render(" is working…"))
	sb.WriteString("\n")

	if tl := m.renderTimeline(m.thinkingID); tl != "" {
		sb.WriteString(tl)
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.styles.Thinking.Render(fmt.Sprintf("  %s Thinking…", thinkingFrames[m.thinkFrame])))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (m Model) tagStyle(tag notes.Tag) lipgloss.Style {
	switch tag {
	case notes.TagDecision:
		return m.styles.TagDecision
	case notes.TagAction:
		return m.styles.TagAction
	default:
		return m.styles.TagIdea
	}
}

// renderHeader returns the header line
func (m Model) renderHeader() string {
	title := m.styles.Header.Render("◆ " + productName)

	right := m.styles.Muted.Render(m.feedLabel)

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + right
}

// renderStatusBar returns the status bar at the bottom
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.status != "" && m.statusErr:
		left = m.styles.ErrorText.Render(m.status)
	case m.status != "":
		left = m.status
	case m.focus == focusBrowse:
		left = "browse: j/k select • ? help • i input"
	default:
		left = "Enter send • Esc browse • Tab timeline"
	}

	pins := len(m.notes.Pinned())
	right := fmt.Sprintf("messages: %d | pins: %d", m.transcript.Len(), pins)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2 // padding
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return m.styles.StatusBar.Render(bar)
}

// truncateLine clips a string to width runes with an ellipsis.
func truncateLine(s string, width int) string {
	if width < 2 {
		width = 2
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
