// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style the TUI consumes, derived once from a
// Theme at startup. Views never construct styles ad hoc.
type Styles struct {
	Header    lipgloss.Style
	Tagline   lipgloss.Style
	Separator lipgloss.Style

	HumanLabel lipgloss.Style
	AgentLabel lipgloss.Style
	Timestamp  lipgloss.Style

	Thinking  lipgloss.Style
	StatusBar lipgloss.Style
	ErrorText lipgloss.Style
	Muted     lipgloss.Style

	Selected lipgloss.Style
	PinMark  lipgloss.Style

	TagDecision lipgloss.Style
	TagAction   lipgloss.Style
	TagIdea     lipgloss.Style

	TimelineTitle  lipgloss.Style
	TimelineDetail lipgloss.Style

	Panel      lipgloss.Style
	PanelTitle lipgloss.Style
	RosterCard lipgloss.Style
	RosterName lipgloss.Style
	RosterRole lipgloss.Style
}

// NewStyles derives the full style set from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		Tagline: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextDim)).
			Italic(true),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Border)),

		HumanLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HumanLabel)).
			Bold(true),

		AgentLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.AgentLabel)).
			Bold(true),

		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextDim)),

		Thinking: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Secondary)).
			Italic(true),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextDim)),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		PinMark: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.PinMark)),

		TagDecision: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TagDecision)).
			Bold(true),

		TagAction: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TagAction)).
			Bold(true),

		TagIdea: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TagIdea)).
			Bold(true),

		TimelineTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		TimelineDetail: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextDim)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		PanelTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true).
			Underline(true),

		RosterCard: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1).
			MarginRight(1),

		RosterName: lipgloss.NewStyle().
			Bold(true),

		RosterRole: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextDim)).
			Italic(true),
	}
}
