// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package tui

import (
	"github.com/nexuscommand/nexusdeck/pkg/export"
	"github.com/nexuscommand/nexusdeck/pkg/feed"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// thinkingMsg indicates an agent turn has started processing.
type thinkingMsg struct {
	MessageID string
	AgentID   string
}

// stepMsg carries one recorded activity step for the in-flight turn.
type stepMsg struct {
	MessageID string
	Step      transcript.ProcessedEvent
}

// responseMsg carries the completed agent message.
type responseMsg struct {
	Message transcript.Message
}

// feedErrorMsg carries an error surfaced by the feed.
type feedErrorMsg struct {
	Err error
}

// exportDoneMsg reports the outcome of an export action.
type exportDoneMsg struct {
	Format export.Format
	Path   string
	Err    error
}

// copyDoneMsg reports the outcome of a clipboard write.
type copyDoneMsg struct {
	Label string
	Err   error
}

// eventBridge adapts feed.Listener to a channel the update loop drains on
// each tick.
type eventBridge struct {
	events chan feed.Event
}

func newEventBridge() *eventBridge {
	return &eventBridge{
		events: make(chan feed.Event, 50),
	}
}

func (eb *eventBridge) OnEvent(event feed.Event) {
	select {
	case eb.events <- event:
	default:
		// Drop event if channel is full (TUI not consuming fast enough)
	}
}
