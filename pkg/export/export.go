// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package export turns a single transcript message into shareable artifacts:
// a themed HTML document, a paged PDF, cleaned plain text, or the raw
// markdown. Writers return errors; the UI boundary decides to log and move
// on.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	// exported artifacts stamp Central time even on hosts without a
	// system zone database
	_ "time/tzdata"

	"github.com/nexuscommand/nexusdeck/pkg/logger"
	"github.com/nexuscommand/nexusdeck/pkg/markdown"
	"github.com/nexuscommand/nexusdeck/pkg/roster"
	"github.com/nexuscommand/nexusdeck/pkg/theme"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// Format selects the artifact type
type Format int

const (
	// FormatHTML is a self-contained themed document
	FormatHTML Format = iota

	// FormatPDF is a paged print document
	FormatPDF

	// FormatText is cleaned plain text
	FormatText

	// FormatMarkdown is the message content verbatim
	FormatMarkdown
)

// String returns the file extension for the format
func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatPDF:
		return "pdf"
	case FormatText:
		return "txt"
	case FormatMarkdown:
		return "md"
	default:
		return "bin"
	}
}

// ParseFormat parses a format name or extension
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "html":
		return FormatHTML, nil
	case "pdf":
		return FormatPDF, nil
	case "txt", "text":
		return FormatText, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	default:
		return FormatHTML, fmt.Errorf("unknown export format: %s", s)
	}
}

// Formats lists every supported format
func Formats() []Format {
	return []Format{FormatHTML, FormatPDF, FormatText, FormatMarkdown}
}

const filenamePrefix = "nexus-message-"

// Exporter writes artifacts for messages into one output directory
type Exporter struct {
	dir          string
	theme        theme.Theme
	registry     *roster.Registry
	confidential bool
	pageSize     string
	now          func() time.Time
}

// Option configures an Exporter
type Option func(*Exporter)

// WithConfidential controls the confidential footer line
func WithConfidential(on bool) Option {
	return func(e *Exporter) { e.confidential = on }
}

// WithPageSize sets the PDF page size ("A4" or "Letter")
func WithPageSize(size string) Option {
	return func(e *Exporter) { e.pageSize = size }
}

// WithClock injects the time source
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// New returns an exporter writing into dir
func New(dir string, th theme.Theme, registry *roster.Registry, opts ...Option) *Exporter {
	e := &Exporter{
		dir:          dir,
		theme:        th,
		registry:     registry,
		confidential: true,
		pageSize:     "A4",
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the message in the given format and returns the artifact
// path.
func (e *Exporter) Export(msg transcript.Message, f Format) (string, error) {
	switch f {
	case FormatHTML:
		return e.ExportHTML(msg)
	case FormatPDF:
		return e.ExportPDF(msg)
	case FormatText:
		return e.ExportText(msg)
	case FormatMarkdown:
		return e.ExportMarkdown(msg)
	default:
		return "", fmt.Errorf("unknown export format: %d", f)
	}
}

// ExportText writes the cleaned plain-text rendition
func (e *Exporter) ExportText(msg transcript.Message) (string, error) {
	text := markdown.ToPlainText(msg.Content)
	return e.writeArtifact(e.filenameFor(msg, FormatText), []byte(text+"\n"))
}

// ExportMarkdown writes the message content verbatim
func (e *Exporter) ExportMarkdown(msg transcript.Message) (string, error) {
	return e.writeArtifact(e.filenameFor(msg, FormatMarkdown), []byte(msg.Content))
}

// ExportHTML writes the self-contained themed document
func (e *Exporter) ExportHTML(msg transcript.Message) (string, error) {
	doc := e.buildHTMLDocument(msg)
	return e.writeArtifact(e.filenameFor(msg, FormatHTML), []byte(doc))
}

// filenameFor builds the artifact filename. Ordinary messages use the fixed
// prefix plus the short message ID; completed reports get an agent-stamped
// timestamped name like the backend's own report exports.
func (e *Exporter) filenameFor(msg transcript.Message, f Format) string {
	if msg.FinalReportWithCitations {
		agent := SanitizeFilenameComponent(e.registry.Resolve(msg.Agent).Name)
		ts := e.timestamp("2006-01-02_15-04-05")
		return "nexus-report-" + agent + "_" + ts + "." + f.String()
	}
	return filenamePrefix + msg.ShortID() + "." + f.String()
}

func (e *Exporter) writeArtifact(name string, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	logger.InfoCF("export", "Wrote artifact", map[string]any{"path": path})
	return path, nil
}

// timestamp formats the current time in US Central time, the home timezone
// of the operations the agents report on.
func (e *Exporter) timestamp(layout string) string {
	return e.now().In(centralTime).Format(layout)
}

var centralTime = loadCentralTime()

func loadCentralTime() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		return time.UTC
	}
	return loc
}

var (
	nonWordChars   = regexp.MustCompile(`[^\w\-]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// SanitizeFilenameComponent makes a free-form string safe for a filename:
// spaces become underscores, everything outside [A-Za-z0-9_-] is removed,
// underscore runs collapse, and an empty result falls back to "unknown".
func SanitizeFilenameComponent(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "unknown"
	}
	text = strings.ReplaceAll(text, " ", "_")
	text = nonWordChars.ReplaceAllString(text, "")
	text = underscoreRuns.ReplaceAllString(text, "_")
	text = strings.Trim(text, "_")
	if text == "" {
		return "unknown"
	}
	return text
}
