// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package tui

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

const maxDetailWidth = 120

// iconFor derives a timeline icon from the entry title by case-insensitive
// substring match. The thinking icon is the current spinner frame so the
// in-flight entry animates with the rest of the UI.
func iconFor(title, spinnerFrame string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "thinking"):
		return spinnerFrame
	case strings.Contains(lower, "research"), strings.Contains(lower, "search"):
		return "🔍"
	case strings.Contains(lower, "function call"):
		return "⚙"
	case strings.Contains(lower, "response"), strings.Contains(lower, "result"):
		return "📥"
	case strings.Contains(lower, "source"), strings.Contains(lower, "citation"):
		return "🔗"
	case strings.Contains(lower, "report"):
		return "📄"
	default:
		return "•"
	}
}

// payloadLines pretty-prints the known payload shapes; anything unknown is
// shown as its raw JSON.
func payloadLines(p transcript.EventPayload) []string {
	switch data := p.(type) {
	case transcript.FunctionCallPayload:
		return mapLines(data.Args)
	case transcript.FunctionResponsePayload:
		return mapLines(data.Response)
	case transcript.SourcePayload:
		lines := make([]string, 0, len(data.Sources))
		for _, s := range data.Sources {
			lines = append(lines, truncateDetail(fmt.Sprintf("%s — %s", s.Label, s.URL)))
		}
		return lines
	case transcript.TextPayload:
		if data.Text == "" {
			return nil
		}
		return []string{truncateDetail(data.Text)}
	case transcript.UnknownPayload:
		if len(data.Raw) == 0 {
			return nil
		}
		return []string{truncateDetail(string(data.Raw))}
	default:
		return nil
	}
}

// mapLines renders a payload map as sorted "key: value" lines so the
// timeline is stable across runs.
func mapLines(m map[string]any) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, truncateDetail(fmt.Sprintf("%s: %s", k, formatValue(m[k]))))
	}
	return lines
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return "null"
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}

func truncateDetail(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= maxDetailWidth {
		return s
	}
	return string(runes[:maxDetailWidth-1]) + "…"
}

// renderTimeline builds the activity block for one AI turn. Collapsed mode
// is a single line; expanded mode lists every step with its detail lines.
func (m Model) renderTimeline(msgID string) string {
	steps := m.transcript.EventsFor(msgID)
	inFlight := m.thinking && msgID == m.thinkingID

	total := len(steps)
	if inFlight {
		total++
	}
	if total == 0 {
		return ""
	}

	if !m.timelineOpen {
		return m.styles.TimelineTitle.Render(fmt.Sprintf("▸ Activity (%d steps)", total))
	}

	var sb strings.Builder
	sb.WriteString(m.styles.TimelineTitle.Render("▾ Activity"))
	sb.WriteString("\n")
	for _, step := range steps {
		icon := iconFor(step.Title, thinkingFrames[m.thinkFrame])
		sb.WriteString(m.styles.TimelineTitle.Render(fmt.Sprintf("  %s %s", icon, step.Title)))
		sb.WriteString("\n")
		for _, line := range payloadLines(step.Payload) {
			sb.WriteString(m.styles.TimelineDetail.Render("      " + line))
			sb.WriteString("\n")
		}
	}
	if inFlight {
		sb.WriteString(m.styles.Thinking.Render(fmt.Sprintf("  %s Thinking…", thinkingFrames[m.thinkFrame])))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
