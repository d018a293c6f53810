// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package digest produces heuristic highlights and summaries of agent
// reports. Results are session-scoped: they live in memory for the life of
// the process and are never persisted, unlike pins and tags.
package digest

import (
	"sort"
	"strings"
	"sync"

	"github.com/nexuscommand/nexusdeck/pkg/markdown"
)

const (
	maxHighlights = 5
	summaryLen    = 3

	// scoreCap keeps one giant run-on sentence from crowding out
	// everything else.
	scoreCap = 300
)

// Digest caches computed highlights and summaries by message ID. Safe for
// concurrent use; the TUI computes from command goroutines.
type Digest struct {
	mu         sync.Mutex
	highlights map[string][]string
	summaries  map[string]string
}

// New returns an empty digest cache
func New() *Digest {
	return &Digest{
		highlights: make(map[string][]string),
		summaries:  make(map[string]string),
	}
}

// Highlights returns up to five key sentences from a markdown report,
// longest first (ties keep document order). The result is cached under
// msgID. Content that cleans down to nothing yields nil and caches nothing.
func (d *Digest) Highlights(msgID, md string) []string {
	d.mu.Lock()
	if cached, ok := d.highlights[msgID]; ok {
		d.mu.Unlock()
		return cached
	}
	d.mu.Unlock()

	result := computeHighlights(md)
	if result == nil {
		return nil
	}

	d.mu.Lock()
	d.highlights[msgID] = result
	d.mu.Unlock()
	return result
}

// Summary returns the first three sentences of the cleaned report, joined by
// single spaces. Cached under msgID like Highlights.
func (d *Digest) Summary(msgID, md string) string {
	d.mu.Lock()
	if cached, ok := d.summaries[msgID]; ok {
		d.mu.Unlock()
		return cached
	}
	d.mu.Unlock()

	result := computeSummary(md)
	if result == "" {
		return ""
	}

	d.mu.Lock()
	d.summaries[msgID] = result
	d.mu.Unlock()
	return result
}

func computeHighlights(md string) []string {
	sentences := cleanSentences(md)
	if len(sentences) == 0 {
		return nil
	}

	type scored struct {
		text  string
		score int
	}
	ranked := make([]scored, 0, len(sentences))
	for _, s := range sentences {
		score := len(s)
		if score > scoreCap {
			score = scoreCap
		}
		ranked = append(ranked, scored{text: s, score: score})
	}

	// stable sort keeps earlier sentences ahead on score ties
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	n := len(ranked)
	if n > maxHighlights {
		n = maxHighlights
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].text
	}
	return out
}

func computeSummary(md string) string {
	sentences := cleanSentences(md)
	if len(sentences) == 0 {
		return ""
	}
	n := len(sentences)
	if n > summaryLen {
		n = summaryLen
	}
	return strings.Join(sentences[:n], " ")
}

func cleanSentences(md string) []string {
	clean := strings.TrimSpace(markdown.ToPlainText(md))
	if clean == "" {
		return nil
	}
	// sentence splitting works on flowing text; newlines act as spaces
	clean = strings.Join(strings.Fields(clean), " ")
	return markdown.SplitSentences(clean)
}
