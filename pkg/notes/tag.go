// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package notes

// Tag is the closed set of labels a message can carry. A message holds at
// most one tag; setting a new one replaces the old.
type Tag int

const (
	// TagDecision marks a message that records a decision
	TagDecision Tag = iota

	// TagAction marks a message that calls for follow-up work
	TagAction

	// TagIdea marks a message worth revisiting
	TagIdea
)

// String returns the string representation of the tag
func (t Tag) String() string {
	switch t {
	case TagDecision:
		return "decision"
	case TagAction:
		return "action"
	case TagIdea:
		return "idea"
	default:
		return "unknown"
	}
}

// ParseTag parses a string into a Tag
func ParseTag(s string) (Tag, error) {
	switch s {
	case "decision":
		return TagDecision, nil
	case "action":
		return TagAction, nil
	case "idea":
		return TagIdea, nil
	default:
		return TagDecision, ErrInvalidTag{s}
	}
}

// MarshalJSON implements json.Marshaler
func (t Tag) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Tag) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidTag{string(data)}
	}
	parsed, err := ParseTag(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ErrInvalidTag is returned when an unknown tag string is parsed
type ErrInvalidTag struct {
	Tag string
}

func (e ErrInvalidTag) Error() string {
	return "invalid tag: " + e.Tag
}
