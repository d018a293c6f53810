// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package transcript

import (
	"encoding/json"
)

// EventKind identifies the payload variant carried by a ProcessedEvent
type EventKind int

const (
	// KindFunctionCall is an agent invoking a backend tool
	KindFunctionCall EventKind = iota

	// KindFunctionResponse is the tool's reply to a prior call
	KindFunctionResponse

	// KindSourceList is a batch of retrieved citations
	KindSourceList

	// KindText is free-form progress text from the agent
	KindText

	// KindUnknown preserves payloads this build does not recognize
	KindUnknown
)

// String returns the string representation of the kind
func (k EventKind) String() string {
	switch k {
	case KindFunctionCall:
		return "function_call"
	case KindFunctionResponse:
		return "function_response"
	case KindSourceList:
		return "source_list"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// ParseEventKind parses a string into an EventKind. Unrecognized strings map
// to KindUnknown rather than erroring, so replay files written by newer
// builds still load.
func ParseEventKind(s string) EventKind {
	switch s {
	case "function_call":
		return KindFunctionCall
	case "function_response":
		return KindFunctionResponse
	case "source_list":
		return KindSourceList
	case "text":
		return KindText
	default:
		return KindUnknown
	}
}

// EventPayload is the closed set of payload variants a ProcessedEvent can
// carry. Renderers switch on Kind() and handle every variant; KindUnknown is
// the only escape hatch.
type EventPayload interface {
	Kind() EventKind
}

// FunctionCallPayload records an agent invoking a named backend function
type FunctionCallPayload struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// Kind implements EventPayload
func (FunctionCallPayload) Kind() EventKind { return KindFunctionCall }

// FunctionResponsePayload records the result of a prior function call
type FunctionResponsePayload struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response,omitempty"`
}

// Kind implements EventPayload
func (FunctionResponsePayload) Kind() EventKind { return KindFunctionResponse }

// Source is a single retrieved citation
type Source struct {
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// SourcePayload carries the citations retrieved during a research step
type SourcePayload struct {
	Sources []Source `json:"sources"`
}

// Kind implements EventPayload
func (SourcePayload) Kind() EventKind { return KindSourceList }

// TextPayload carries free-form progress text
type TextPayload struct {
	Text string `json:"text"`
}

// Kind implements EventPayload
func (TextPayload) Kind() EventKind { return KindText }

// UnknownPayload preserves the raw bytes of a payload whose kind this build
// does not recognize. The timeline renders it as an opaque step.
type UnknownPayload struct {
	Raw json.RawMessage `json:"-"`
}

// Kind implements EventPayload
func (UnknownPayload) Kind() EventKind { return KindUnknown }

// ProcessedEvent is one entry in an AI turn's activity timeline
type ProcessedEvent struct {
	Title   string
	Payload EventPayload
}

type eventEnvelope struct {
	Title string          `json:"title"`
	Kind  string          `json:"kind"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (e ProcessedEvent) MarshalJSON() ([]byte, error) {
	env := eventEnvelope{Title: e.Title, Kind: KindUnknown.String()}
	switch p := e.Payload.(type) {
	case nil:
		// kind stays "unknown", data omitted
	case UnknownPayload:
		env.Data = p.Raw
	default:
		data, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		env.Kind = p.Kind().String()
		env.Data = data
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler. Unknown kinds and undecodable
// data both degrade to UnknownPayload; a timeline entry is never the reason a
// replay file fails to load.
func (e *ProcessedEvent) UnmarshalJSON(data []byte) error {
	var env eventEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	e.Title = env.Title
	e.Payload = decodePayload(ParseEventKind(env.Kind), env.Data)
	return nil
}

func decodePayload(kind EventKind, data json.RawMessage) EventPayload {
	switch kind {
	case KindFunctionCall:
		var p FunctionCallPayload
		if err := json.Unmarshal(data, &p); err == nil {
			return p
		}
	case KindFunctionResponse:
		var p FunctionResponsePayload
		if err := json.Unmarshal(data, &p); err == nil {
			return p
		}
	case KindSourceList:
		var p SourcePayload
		if err := json.Unmarshal(data, &p); err == nil {
			return p
		}
	case KindText:
		var p TextPayload
		if err := json.Unmarshal(data, &p); err == nil {
			return p
		}
	}
	return UnknownPayload{Raw: data}
}
