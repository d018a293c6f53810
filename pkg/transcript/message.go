// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package transcript

import (
	"time"
)

// Role identifies who authored a message
type Role int

const (
	// RoleHuman is the operator typing into the deck
	RoleHuman Role = iota

	// RoleAI is a response produced by the agent team
	RoleAI
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleHuman:
		return "human"
	case RoleAI:
		return "ai"
	default:
		return "unknown"
	}
}

// ParseRole parses a string into a Role
func ParseRole(s string) (Role, error) {
	switch s {
	case "human":
		return RoleHuman, nil
	case "ai":
		return RoleAI, nil
	default:
		return RoleHuman, ErrInvalidRole{s}
	}
}

// MarshalJSON implements json.Marshaler
func (r Role) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (r *Role) UnmarshalJSON(data []byte) error {
	str, err := unquoteString(data)
	if err != nil {
		return err
	}
	parsed, err := ParseRole(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ErrInvalidRole is returned when an unknown role string is parsed
type ErrInvalidRole struct {
	Role string
}

func (e ErrInvalidRole) Error() string {
	return "invalid role: " + e.Role
}

// Message is one turn of the conversation. AI turns carry the identifier of
// the agent that produced them; the roster resolves it to a display profile.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Agent     string    `json:"agent,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	// FinalReportWithCitations marks a completed report whose inline
	// citation links should be preserved on export.
	FinalReportWithCitations bool `json:"final_report_with_citations,omitempty"`
}

// ShortID returns the first 8 characters of the message ID, used in exported
// filenames and status lines.
func (m Message) ShortID() string {
	if len(m.ID) <= 8 {
		return m.ID
	}
	return m.ID[:8]
}

// IsAI reports whether the message was produced by the agent team.
func (m Message) IsAI() bool {
	return m.Role == RoleAI
}

func unquoteString(data []byte) (string, error) {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return string(data[1 : len(data)-1]), nil
	}
	return "", ErrInvalidRole{"not a quoted string"}
}
