// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package notes keeps the operator's pins and tags across sessions. The
// store front-ends an injected backend; the TUI and the CLI both talk to the
// store and never touch persistence directly.
package notes

import (
	"sync"

	"github.com/nexuscommand/nexusdeck/pkg/logger"
)

// Backend persists the two annotation documents. Load degrades malformed
// stored data to empty collections instead of returning an error; an
// annotation store must never block startup.
type Backend interface {
	LoadPins() ([]string, error)
	LoadTags() (map[string]Tag, error)
	SavePins(pins []string) error
	SaveTags(tags map[string]Tag) error
}

// Snapshot is an immutable copy of the store state handed to subscribers
type Snapshot struct {
	Pins []string
	Tags map[string]Tag
}

// Store holds pins (ordered by pin time) and per-message tags. Every
// mutation persists through the backend and notifies subscribers; a
// persistence failure is logged and the in-memory state stands.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	pins    []string
	tags    map[string]Tag
	subs    []func(Snapshot)
}

// NewStore loads existing annotations from the backend
func NewStore(backend Backend) *Store {
	s := &Store{
		backend: backend,
		tags:    make(map[string]Tag),
	}

	pins, err := backend.LoadPins()
	if err != nil {
		logger.WarnCF("notes", "Loading pins failed, starting empty", map[string]any{"error": err.Error()})
		pins = nil
	}
	s.pins = pins

	tags, err := backend.LoadTags()
	if err != nil {
		logger.WarnCF("notes", "Loading tags failed, starting empty", map[string]any{"error": err.Error()})
		tags = nil
	}
	if tags != nil {
		s.tags = tags
	}

	return s
}

// Pinned returns the pinned message IDs in the order they were pinned
func (s *Store) Pinned() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.pins))
	copy(out, s.pins)
	return out
}

// IsPinned reports whether a message is pinned
func (s *Store) IsPinned(msgID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.pins {
		if id == msgID {
			return true
		}
	}
	return false
}

// TogglePin pins an unpinned message or unpins a pinned one, and reports the
// resulting state. Toggling twice always restores the original state.
func (s *Store) TogglePin(msgID string) bool {
	s.mu.Lock()
	pinned := false
	found := -1
	for i, id := range s.pins {
		if id == msgID {
			found = i
			break
		}
	}
	if found >= 0 {
		s.pins = append(s.pins[:found], s.pins[found+1:]...)
	} else {
		s.pins = append(s.pins, msgID)
		pinned = true
	}
	s.persistPinsLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return pinned
}

// Tag returns the tag on a message, if any
func (s *Store) Tag(msgID string) (Tag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tags[msgID]
	return t, ok
}

// Tags returns a copy of all message tags
func (s *Store) Tags() map[string]Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Tag, len(s.tags))
	for k, v := range s.tags {
		out[k] = v
	}
	return out
}

// SetTag tags a message, replacing any existing tag
func (s *Store) SetTag(msgID string, tag Tag) {
	s.mu.Lock()
	s.tags[msgID] = tag
	s.persistTagsLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// ClearTag removes the tag from a message. Clearing an untagged message is a
// no-op.
func (s *Store) ClearTag(msgID string) {
	s.mu.Lock()
	if _, ok := s.tags[msgID]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.tags, msgID)
	s.persistTagsLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Subscribe registers a callback invoked after every mutation. Callbacks run
// on the mutating goroutine and must not call back into the store.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	pins := make([]string, len(s.pins))
	copy(pins, s.pins)
	tags := make(map[string]Tag, len(s.tags))
	for k, v := range s.tags {
		tags[k] = v
	}
	return Snapshot{Pins: pins, Tags: tags}
}

func (s *Store) persistPinsLocked() {
	if err := s.backend.SavePins(s.pins); err != nil {
		logger.WarnCF("notes", "Persisting pins failed", map[string]any{"error": err.Error()})
	}
}

func (s *Store) persistTagsLocked() {
	if err := s.backend.SaveTags(s.tags); err != nil {
		logger.WarnCF("notes", "Persisting tags failed", map[string]any{"error": err.Error()})
	}
}

func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(snap)
	}
}
