// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notes

// MemoryBackend keeps annotations for the process lifetime only. Used in
// tests and as the fallback when persistent storage cannot be opened.
type MemoryBackend struct {
	pins []string
	tags map[string]Tag
}

// NewMemoryBackend returns an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{tags: make(map[string]Tag)}
}

// LoadPins implements Backend
func (m *MemoryBackend) LoadPins() ([]string, error) {
	out := make([]string, len(m.pins))
	copy(out, m.pins)
	return out, nil
}

// LoadTags implements Backend
func (m *MemoryBackend) LoadTags() (map[string]Tag, error) {
	out := make(map[string]Tag, len(m.tags))
	for k, v := range m.tags {
		out[k] = v
	}
	return out, nil
}

// SavePins implements Backend
func (m *MemoryBackend) SavePins(pins []string) error {
	m.pins = make([]string, len(pins))
	copy(m.pins, pins)
	return nil
}

// SaveTags implements Backend
func (m *MemoryBackend) SaveTags(tags map[string]Tag) error {
	m.tags = make(map[string]Tag, len(tags))
	for k, v := range tags {
		m.tags[k] = v
	}
	return nil
}
