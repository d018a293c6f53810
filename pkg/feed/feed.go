// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package feed defines the contract between the console and whatever
// produces agent turns. The deck ships two local sources: a scripted
// demonstration team and a transcript replayer. Both emit the same
// lifecycle events a live backend would.
package feed

import (
	"context"

	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// EventType identifies a turn lifecycle event
type EventType int

const (
	// EventThinkingStarted fires when a submitted prompt starts processing
	EventThinkingStarted EventType = iota

	// EventStepRecorded fires for each activity timeline entry
	EventStepRecorded

	// EventResponseComplete fires with the finished AI message
	EventResponseComplete

	// EventError fires when a turn fails
	EventError
)

// Event is one lifecycle notification
type Event struct {
	Type EventType
	Data any
}

// ThinkingData announces the turn being processed
type ThinkingData struct {
	MessageID string
	AgentID   string
}

// StepData carries one timeline entry for the in-flight turn
type StepData struct {
	MessageID string
	Step      transcript.ProcessedEvent
}

// ResponseData carries the completed AI message
type ResponseData struct {
	Message transcript.Message
}

// ErrorData carries a turn failure
type ErrorData struct {
	Err error
}

// Listener receives lifecycle events. Events fire from the feed's worker
// goroutine; implementations must be safe to call from there.
type Listener interface {
	OnEvent(event Event)
}

// Feed accepts prompts and emits turn events. One turn is in flight at a
// time; Submit while busy returns an error, Cancel stops the in-flight turn
// without a response.
type Feed interface {
	Submit(ctx context.Context, text string) error
	Cancel()
	SetListener(l Listener)
}
