// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap collects every binding the console understands. Typing keys reach
// the textarea only while the input has focus; the single-letter action keys
// apply to the selected message in browse mode.
type keyMap struct {
	Quit       key.Binding
	CancelTurn key.Binding
	Escape     key.Binding
	FocusInput key.Binding
	Help       key.Binding

	PrevMessage key.Binding
	NextMessage key.Binding
	PageUp      key.Binding
	PageDown    key.Binding

	CopyMarkdown key.Binding
	CopyPlain    key.Binding
	ExportHTML   key.Binding
	ExportPDF    key.Binding
	ExportText   key.Binding
	ExportMD     key.Binding

	TogglePin   key.Binding
	TagDecision key.Binding
	TagAction   key.Binding
	TagIdea     key.Binding
	ClearTag    key.Binding

	Digest         key.Binding
	SessionSummary key.Binding
	Settings       key.Binding
	CleanView      key.Binding
	Timeline       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		CancelTurn: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cancel turn")),
		Escape:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close / browse")),
		FocusInput: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "input")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),

		PrevMessage: key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous message")),
		NextMessage: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next message")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),

		CopyMarkdown: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy markdown")),
		CopyPlain:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy plain text")),
		ExportHTML:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export html")),
		ExportPDF:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export pdf")),
		ExportText:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "export txt")),
		ExportMD:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "export md")),

		TogglePin:   key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "toggle pin")),
		TagDecision: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "tag decision")),
		TagAction:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "tag action")),
		TagIdea:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "tag idea")),
		ClearTag:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "clear tag")),

		Digest:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "highlights")),
		SessionSummary: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "session summary")),
		Settings:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "settings")),
		CleanView:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "clean view")),
		Timeline:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle timeline")),
	}
}
