// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package markdown

import (
	"strings"
	"testing"
)

func TestToPlainTextReducesFormatting(t *testing.T) {
	got := ToPlainText("**bold** and [a link](http://x.com)")
	if got != "bold and a link" {
		t.Errorf("ToPlainText = %q, want %q", got, "bold and a link")
	}
}

func TestToPlainTextDropsFencedCode(t *testing.T) {
	md := "Before.\n\n```go\nfmt.Println(\"secret\")\n```\n\nAfter."
	got := ToPlainText(md)

	if strings.Contains(got, "```") {
		t.Errorf("fence delimiters survived: %q", got)
	}
	if strings.Contains(got, "Println") {
		t.Errorf("fenced content survived: %q", got)
	}
	if !strings.Contains(got, "Before.") || !strings.Contains(got, "After.") {
		t.Errorf("surrounding text lost: %q", got)
	}
}

func TestToPlainTextStripsMarkers(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{"heading", "# Title\n\nBody text.", "Title\n\nBody text."},
		{"bullets", "- one\n- two", "one\ntwo"},
		{"numbered", "1. first\n2. second", "first\nsecond"},
		{"inline code", "run `go vet` locally", "run go vet locally"},
		{"image", "![chart of Q3](img.png) attached", "chart of Q3 attached"},
		{"emphasis", "*light* and _gentle_", "light and gentle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPlainText(tt.md); got != tt.want {
				t.Errorf("ToPlainText(%q) = %q, want %q", tt.md, got, tt.want)
			}
		})
	}
}

func TestToPlainTextCollapsesBlankRuns(t *testing.T) {
	got := ToPlainText("a\n\n\n\n\nb")
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank run survived: %q", got)
	}
}

func TestToPlainTextStripsEmoji(t *testing.T) {
	got := ToPlainText("🚀 Launch update ✅ complete")
	if strings.ContainsRune(got, '🚀') || strings.ContainsRune(got, '✅') {
		t.Errorf("emoji survived: %q", got)
	}
	if !strings.Contains(got, "Launch update") {
		t.Errorf("text lost: %q", got)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			"simple",
			"First point. Second point! Third?",
			[]string{"First point.", "Second point!", "Third?"},
		},
		{
			"decimal not split",
			"Version 3.5 shipped on time. Rollout begins Monday.",
			[]string{"Version 3.5 shipped on time.", "Rollout begins Monday."},
		},
		{
			"terminal run stays attached",
			"Really?! Yes... definitely.",
			[]string{"Really?!", "Yes... definitely."},
		},
		{
			"unterminated tail kept",
			"Complete sentence. trailing fragment",
			[]string{"Complete sentence.", "trailing fragment"},
		},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sentences %v, want %d", len(got), got, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStripEmojiRanges(t *testing.T) {
	in := "📊 stats 🛡️ guard ⚙️ ops 🤖 bot ☀ sun plain"
	got := StripEmoji(in)

	for _, r := range got {
		if isEmoji(r) {
			t.Fatalf("emoji rune %U survived in %q", r, got)
		}
	}
	if !strings.Contains(got, "stats") || !strings.Contains(got, "plain") {
		t.Errorf("text damaged: %q", got)
	}
}

func TestNormalizeForPDF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"“quoted” — said", `"quoted" -- said`},
		{"it’s fine", "it's fine"},
		{"wait…", "wait..."},
		{"日本語 dropped", " dropped"},
		{"café stays", "café stays"},
	}

	for _, tt := range tests {
		if got := NormalizeForPDF(tt.in); got != tt.want {
			t.Errorf("NormalizeForPDF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
