// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Transcript holds the conversation plus the per-turn activity timeline.
// It is owned by the TUI update loop and is not safe for concurrent
// mutation; goroutines hand changes back as messages instead.
type Transcript struct {
	Messages []Message                   `json:"messages"`
	Events   map[string][]ProcessedEvent `json:"events,omitempty"`
}

// New returns an empty transcript
func New() *Transcript {
	return &Transcript{
		Events: make(map[string][]ProcessedEvent),
	}
}

// Append adds a message to the end of the conversation
func (t *Transcript) Append(msg Message) {
	t.Messages = append(t.Messages, msg)
}

// AppendEvent records a timeline entry for the given AI turn. Event lists
// are append-only; entries are never reordered or replaced.
func (t *Transcript) AppendEvent(msgID string, ev ProcessedEvent) {
	if t.Events == nil {
		t.Events = make(map[string][]ProcessedEvent)
	}
	t.Events[msgID] = append(t.Events[msgID], ev)
}

// EventsFor returns the timeline entries recorded for a message, in arrival
// order. Returns nil for messages with no events.
func (t *Transcript) EventsFor(msgID string) []ProcessedEvent {
	if t.Events == nil {
		return nil
	}
	return t.Events[msgID]
}

// ByID returns the message with the given ID
func (t *Transcript) ByID(id string) (Message, bool) {
	for _, msg := range t.Messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return Message{}, false
}

// Len returns the number of messages in the conversation
func (t *Transcript) Len() int {
	return len(t.Messages)
}

// Load reads a transcript from a JSON replay file
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}
	if t.Events == nil {
		t.Events = make(map[string][]ProcessedEvent)
	}
	return &t, nil
}

// Save writes the transcript to path atomically (temp file + rename), so a
// crash mid-write never leaves a truncated replay file behind.
func (t *Transcript) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "transcript-*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmpFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	cleanup = false
	return nil
}
