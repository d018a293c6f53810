// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package digest

import (
	"strings"
	"testing"
)

func TestHighlightsCapAtFive(t *testing.T) {
	md := "One short. Two is a bit longer here. Three has even more words inside it. " +
		"Four keeps growing with extra detail attached. Five is the longest sentence of the whole set by far. " +
		"Six trails. Seven also trails."

	d := New()
	got := d.Highlights("m1", md)

	if len(got) != 5 {
		t.Fatalf("got %d highlights, want 5: %v", len(got), got)
	}
	for _, h := range got {
		if strings.TrimSpace(h) == "" {
			t.Error("empty highlight returned")
		}
	}
	// longest first
	if !strings.HasPrefix(got[0], "Five") {
		t.Errorf("top highlight = %q, want the longest sentence", got[0])
	}
}

func TestHighlightsFewSentences(t *testing.T) {
	d := New()
	got := d.Highlights("m1", "Only one. And two.")
	if len(got) != 2 {
		t.Fatalf("got %d highlights, want 2: %v", len(got), got)
	}
}

func TestHighlightsScoreTiesKeepDocumentOrder(t *testing.T) {
	// identical lengths, identical scores
	md := "Aaa bbb ccc one. Aaa bbb ccc two."
	d := New()
	got := d.Highlights("m1", md)

	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	if !strings.Contains(got[0], "one") || !strings.Contains(got[1], "two") {
		t.Errorf("tie broke document order: %v", got)
	}
}

func TestHighlightsLongSentencesScoreCapped(t *testing.T) {
	long := strings.Repeat("word ", 100) + "end."   // > 300 chars
	longer := strings.Repeat("term ", 200) + "end." // even bigger, same capped score
	md := longer + " " + long

	d := New()
	got := d.Highlights("m1", md)

	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
	// both cap at the same score, so document order decides
	if !strings.HasPrefix(got[0], "term") {
		t.Errorf("capped tie broke document order: %q", got[0])
	}
}

func TestHighlightsEmptyContent(t *testing.T) {
	d := New()

	for _, md := range []string{"", "   ", "```\ncode only\n```", "🚀✅"} {
		if got := d.Highlights("m1", md); got != nil {
			t.Errorf("Highlights(%q) = %v, want nil", md, got)
		}
	}
}

func TestHighlightsCached(t *testing.T) {
	d := New()
	first := d.Highlights("m1", "Original content here.")
	second := d.Highlights("m1", "Completely different content now.")

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected shapes: %v / %v", first, second)
	}
	if second[0] != first[0] {
		t.Errorf("cache miss: second call recomputed %q", second[0])
	}
}

func TestSummaryFirstThreeSentences(t *testing.T) {
	md := "First finding. Second finding! Third finding? Fourth is ignored."

	d := New()
	got := d.Summary("m1", md)

	want := "First finding. Second finding! Third finding?"
	if got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

func TestSummaryShortContent(t *testing.T) {
	d := New()
	if got := d.Summary("m1", "Just one sentence."); got != "Just one sentence." {
		t.Errorf("Summary = %q", got)
	}
	if got := d.Summary("m2", ""); got != "" {
		t.Errorf("Summary(empty) = %q, want empty", got)
	}
}

func TestSummaryStripsFormatting(t *testing.T) {
	d := New()
	got := d.Summary("m1", "# Header\n\n**Bold** start. More text.")
	if strings.ContainsAny(got, "#*") {
		t.Errorf("markdown markers survived: %q", got)
	}
}
