// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nexuscommand/nexusdeck/pkg/roster"
	"github.com/nexuscommand/nexusdeck/pkg/theme"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// fixedClock: 2026-08-20 14:30:00 UTC is 09:30:00 in Chicago
func fixedClock() time.Time {
	return time.Date(2026, 8, 20, 14, 30, 0, 0, time.UTC)
}

func newTestExporter(t *testing.T, opts ...Option) (*Exporter, string) {
	t.Helper()
	dir := t.TempDir()
	opts = append([]Option{WithClock(fixedClock)}, opts...)
	return New(dir, theme.Dark(), roster.Default(), opts...), dir
}

func testMessage() transcript.Message {
	return transcript.Message{
		ID:      "550e8400-e29b-41d4-a716-446655440000",
		Role:    transcript.RoleAI,
		Agent:   "atlas",
		Content: "# Weekly Report\n\nOvertime 🟢 is under control.\n\n- utilization up\n- costs flat\n",
	}
}

func TestExportTextArtifact(t *testing.T) {
	e, _ := newTestExporter(t)

	path, err := e.ExportText(testMessage())
	if err != nil {
		t.Fatalf("ExportText failed: %v", err)
	}
	if filepath.Base(path) != "nexus-message-550e8400.txt" {
		t.Errorf("filename = %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if strings.ContainsAny(text, "#*") {
		t.Errorf("markdown markers in plain text: %q", text)
	}
	if strings.Contains(text, "🟢") {
		t.Errorf("emoji in plain text: %q", text)
	}
	if !strings.Contains(text, "Weekly Report") || !strings.Contains(text, "utilization up") {
		t.Errorf("content missing: %q", text)
	}
}

func TestExportMarkdownVerbatim(t *testing.T) {
	e, _ := newTestExporter(t)
	msg := testMessage()

	path, err := e.ExportMarkdown(msg)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != msg.Content {
		t.Errorf("markdown not verbatim:\n%q\nvs\n%q", data, msg.Content)
	}
}

func TestExportDispatch(t *testing.T) {
	e, dir := newTestExporter(t)

	for _, f := range Formats() {
		path, err := e.Export(testMessage(), f)
		if err != nil {
			t.Fatalf("Export(%v) failed: %v", f, err)
		}
		if filepath.Ext(path) != "."+f.String() {
			t.Errorf("extension = %s, want .%s", filepath.Ext(path), f)
		}
		if filepath.Dir(path) != dir {
			t.Errorf("artifact outside export dir: %s", path)
		}
	}
}

func TestReportFilenameAgentStamped(t *testing.T) {
	e, _ := newTestExporter(t)
	msg := testMessage()
	msg.FinalReportWithCitations = true

	path, err := e.ExportMarkdown(msg)
	if err != nil {
		t.Fatal(err)
	}
	if got := filepath.Base(path); got != "nexus-report-Atlas_2026-08-20_09-30-00.md" {
		t.Errorf("report filename = %s", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"html", FormatHTML, false},
		{".pdf", FormatPDF, false},
		{"TXT", FormatText, false},
		{"markdown", FormatMarkdown, false},
		{"docx", FormatHTML, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeFilenameComponent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Deep Research Report!", "Deep_Research_Report"},
		{"a  b", "a_b"},
		{"__trimmed__", "trimmed"},
		{"héllo wörld", "hllo_wrld"},
		{"///", "unknown"},
		{"", "unknown"},
		{"   ", "unknown"},
		{"already-fine_123", "already-fine_123"},
	}

	for _, tt := range tests {
		if got := SanitizeFilenameComponent(tt.in); got != tt.want {
			t.Errorf("SanitizeFilenameComponent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
