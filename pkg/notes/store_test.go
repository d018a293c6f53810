// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notes

import (
	"testing"
)

func TestPinOrderFollowsPinTime(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	s.TogglePin("m1")
	s.TogglePin("m2")

	got := s.Pinned()
	if len(got) != 2 || got[0] != "m1" || got[1] != "m2" {
		t.Fatalf("Pinned() = %v, want [m1 m2]", got)
	}

	s.TogglePin("m1")
	got = s.Pinned()
	if len(got) != 1 || got[0] != "m2" {
		t.Fatalf("after unpin, Pinned() = %v, want [m2]", got)
	}
}

func TestTogglePinInvolutive(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	if !s.TogglePin("m1") {
		t.Error("first toggle should pin")
	}
	if s.TogglePin("m1") {
		t.Error("second toggle should unpin")
	}
	if s.IsPinned("m1") {
		t.Error("double toggle must restore the original state")
	}
	if len(s.Pinned()) != 0 {
		t.Errorf("Pinned() = %v, want empty", s.Pinned())
	}
}

func TestRepinMovesToEnd(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	s.TogglePin("m1")
	s.TogglePin("m2")
	s.TogglePin("m1") // unpin
	s.TogglePin("m1") // pin again, later than m2

	got := s.Pinned()
	if len(got) != 2 || got[0] != "m2" || got[1] != "m1" {
		t.Fatalf("Pinned() = %v, want [m2 m1]", got)
	}
}

func TestSetTagOverwrites(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	s.SetTag("m1", TagAction)
	s.SetTag("m1", TagDecision)

	tag, ok := s.Tag("m1")
	if !ok || tag != TagDecision {
		t.Fatalf("Tag(m1) = %v,%v, want decision", tag, ok)
	}
	if len(s.Tags()) != 1 {
		t.Errorf("Tags() = %v, want single entry", s.Tags())
	}
}

func TestClearTag(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	s.SetTag("m1", TagIdea)
	s.ClearTag("m1")

	if _, ok := s.Tag("m1"); ok {
		t.Error("tag survived ClearTag")
	}

	// clearing an untagged message is a no-op
	s.ClearTag("m2")
	if len(s.Tags()) != 0 {
		t.Errorf("Tags() = %v, want empty", s.Tags())
	}
}

func TestSubscribeSeesEveryMutation(t *testing.T) {
	s := NewStore(NewMemoryBackend())

	var snaps []Snapshot
	s.Subscribe(func(snap Snapshot) {
		snaps = append(snaps, snap)
	})

	s.TogglePin("m1")
	s.SetTag("m1", TagAction)
	s.ClearTag("m1")

	if len(snaps) != 3 {
		t.Fatalf("got %d notifications, want 3", len(snaps))
	}
	last := snaps[len(snaps)-1]
	if len(last.Pins) != 1 || last.Pins[0] != "m1" {
		t.Errorf("final snapshot pins = %v", last.Pins)
	}
	if len(last.Tags) != 0 {
		t.Errorf("final snapshot tags = %v", last.Tags)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore(NewMemoryBackend())
	s.TogglePin("m1")

	snap := s.Snapshot()
	snap.Pins[0] = "mutated"
	snap.Tags["x"] = TagIdea

	if s.Pinned()[0] != "m1" {
		t.Error("snapshot mutation leaked into store")
	}
	if len(s.Tags()) != 0 {
		t.Error("snapshot tag mutation leaked into store")
	}
}

func TestStoreLoadsExistingState(t *testing.T) {
	backend := NewMemoryBackend()
	first := NewStore(backend)
	first.TogglePin("m1")
	first.SetTag("m2", TagIdea)

	second := NewStore(backend)
	if !second.IsPinned("m1") {
		t.Error("pin lost across store instances")
	}
	if tag, ok := second.Tag("m2"); !ok || tag != TagIdea {
		t.Errorf("tag lost across store instances: %v,%v", tag, ok)
	}
}

func TestTagParsing(t *testing.T) {
	tests := []struct {
		in      string
		want    Tag
		wantErr bool
	}{
		{"decision", TagDecision, false},
		{"action", TagAction, false},
		{"idea", TagIdea, false},
		{"urgent", TagDecision, true},
		{"", TagDecision, true},
	}

	for _, tt := range tests {
		got, err := ParseTag(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTag(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
