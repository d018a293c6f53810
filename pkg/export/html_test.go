// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package export

import (
	"os"
	"strings"
	"testing"
)

func TestExportHTMLDocument(t *testing.T) {
	e, _ := newTestExporter(t)

	path, err := e.ExportHTML(testMessage())
	if err != nil {
		t.Fatalf("ExportHTML failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	doc := string(data)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Weekly Report</title>",
		`<span class="status-badge badge-green">GRN</span>`,
		"NEXUS COMMAND | CONFIDENTIAL",
		"Generated on 2026-08-20 09:30:00 CST",
		"Prepared by Atlas",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	if strings.Contains(doc, "🟢") {
		t.Error("status emoji survived badge conversion")
	}
}

func TestExportHTMLAgentAccentInCSS(t *testing.T) {
	e, _ := newTestExporter(t)

	path, err := e.ExportHTML(testMessage())
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)

	// Atlas accent from the roster
	if !strings.Contains(string(data), "#3498DB") {
		t.Error("agent accent color missing from document CSS")
	}
}

func TestExportHTMLHardenedLinks(t *testing.T) {
	e, _ := newTestExporter(t)
	msg := testMessage()
	msg.Content = "See [the source](https://example.com/report)."

	path, err := e.ExportHTML(msg)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)

	if !strings.Contains(string(data), `rel="noopener noreferrer"`) {
		t.Error("anchor not hardened in exported document")
	}
}

func TestExportHTMLWithoutConfidentialFooter(t *testing.T) {
	e, _ := newTestExporter(t, WithConfidential(false))

	path, err := e.ExportHTML(testMessage())
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)

	if strings.Contains(string(data), "CONFIDENTIAL") {
		t.Error("confidential line present despite option")
	}
}

func TestDocumentTitleFallback(t *testing.T) {
	if got := documentTitle("no headings here"); got != "Nexus Command Report" {
		t.Errorf("documentTitle = %q", got)
	}
	if got := documentTitle("## only h2\n\n# The Real Title"); got != "The Real Title" {
		t.Errorf("documentTitle = %q", got)
	}
}

func TestExportHTMLDecorativeEmojiDropped(t *testing.T) {
	e, _ := newTestExporter(t)
	msg := testMessage()
	msg.Content = "📊 Metrics 📅 schedule 💡 idea"

	path, err := e.ExportHTML(msg)
	if err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	doc := string(data)

	for _, emoji := range []string{"📊", "📅", "💡"} {
		if strings.Contains(doc, emoji) {
			t.Errorf("decorative emoji %s survived", emoji)
		}
	}
	if !strings.Contains(doc, "Metrics") {
		t.Error("text lost with emoji")
	}
}
