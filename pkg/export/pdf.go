// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/nexuscommand/nexusdeck/pkg/logger"
	"github.com/nexuscommand/nexusdeck/pkg/markdown"
	"github.com/nexuscommand/nexusdeck/pkg/roster"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// Print metrics in millimeters. The PDF uses a print palette independent of
// the terminal theme; paper is always light.
const (
	pdfMarginLeft  = 15.0
	pdfMarginTop   = 20.0
	pdfMarginRight = 15.0
	pdfBottomPad   = 20.0

	bodyLineH  = 5.2
	codeLineH  = 4.8
	blankGap   = 3.0
	indentStep = 6.0
	markerSlot = 7.0
)

// ExportPDF writes the paged print rendition
func (e *Exporter) ExportPDF(msg transcript.Message) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	profile := e.registry.Resolve(msg.Agent)
	doc := e.renderPDF(msg, profile)

	path := filepath.Join(e.dir, e.filenameFor(msg, FormatPDF))
	if err := doc.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}
	logger.InfoCF("export", "Wrote artifact", map[string]any{"path": path})
	return path, nil
}

func (e *Exporter) renderPDF(msg transcript.Message, profile roster.Profile) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", e.pageSize, "")
	doc.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.SetAutoPageBreak(false, pdfBottomPad)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	l := &pdfLayout{
		doc:    doc,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
		left:   pdfMarginLeft,
		top:    pdfMarginTop,
		bottom: pageH - pdfBottomPad,
		width:  pageW - pdfMarginLeft - pdfMarginRight,
		y:      pdfMarginTop,
	}
	l.accentR, l.accentG, l.accentB = hexToRGB(profile.Color)

	l.byline(profile, e.timestamp("2006-01-02 15:04"))
	for _, line := range markdown.Lines(msg.Content) {
		l.emit(line)
	}

	e.stampPageChrome(doc, pageW, pageH)
	return doc
}

// stampPageChrome runs after the content pass and writes the per-page header
// and footer, now that the total page count is known.
func (e *Exporter) stampPageChrome(doc *fpdf.Fpdf, pageW, pageH float64) {
	tr := doc.UnicodeTranslatorFromDescriptor("")
	total := doc.PageCount()
	generated := fmt.Sprintf("Generated on %s CST", e.timestamp("2006-01-02 15:04:05"))

	header := "NEXUS COMMAND"
	if e.confidential {
		header = "NEXUS COMMAND  |  CONFIDENTIAL"
	}

	for i := 1; i <= total; i++ {
		doc.SetPage(i)

		doc.SetFont("Helvetica", "B", 7)
		doc.SetTextColor(107, 114, 128)
		doc.Text((pageW-doc.GetStringWidth(header))/2, 12, header)

		doc.SetFont("Helvetica", "I", 8)
		doc.Text(pdfMarginLeft, pageH-10, tr(generated))

		pageMark := fmt.Sprintf("Page %d of %d", i, total)
		doc.SetFont("Helvetica", "", 8)
		doc.Text(pageW-pdfMarginRight-doc.GetStringWidth(pageMark), pageH-10, pageMark)
	}
}

// pdfLayout walks classified lines down the page with a single vertical
// cursor, breaking to a fresh page when the cursor passes the printable
// bottom.
type pdfLayout struct {
	doc    *fpdf.Fpdf
	tr     func(string) string
	left   float64
	top    float64
	bottom float64
	width  float64
	y      float64

	accentR, accentG, accentB int
}

func (l *pdfLayout) emit(line markdown.Line) {
	switch line.Kind {
	case markdown.LineBlank:
		if l.y > l.top {
			l.y += blankGap
		}
	case markdown.LineH1:
		l.heading(line.Text, 16, 8.0, true)
	case markdown.LineH2:
		l.heading(line.Text, 13, 6.5, false)
	case markdown.LineH3:
		l.heading(line.Text, 11.5, 6.0, false)
	case markdown.LineBullet:
		l.listItem("-", line.Text, line.Indent)
	case markdown.LineNumbered:
		l.listItem(strconv.Itoa(line.Ordinal)+".", line.Text, line.Indent)
	case markdown.LineCode:
		l.codeLine(line.Text)
	default:
		l.paragraph(line.Text, line.Indent)
	}
}

func (l *pdfLayout) byline(profile roster.Profile, when string) {
	l.doc.SetFont("Helvetica", "I", 9)
	l.doc.SetTextColor(107, 114, 128)
	l.ensure(bodyLineH)
	l.doc.Text(l.left, l.y, l.tr(fmt.Sprintf("Prepared by %s - %s - %s", profile.Name, profile.Role, when)))
	l.y += bodyLineH

	l.doc.SetDrawColor(l.accentR, l.accentG, l.accentB)
	l.doc.SetLineWidth(0.5)
	l.doc.Line(l.left, l.y, l.left+l.width, l.y)
	l.y += blankGap * 2
}

func (l *pdfLayout) heading(text string, size, lineH float64, rule bool) {
	clean := l.clean(text)
	if clean == "" {
		return
	}

	l.doc.SetFont("Helvetica", "B", size)
	l.doc.SetTextColor(17, 24, 39)
	for _, ln := range l.doc.SplitText(clean, l.width) {
		l.ensure(lineH)
		l.doc.Text(l.left, l.y, ln)
		l.y += lineH
	}
	if rule {
		l.doc.SetDrawColor(l.accentR, l.accentG, l.accentB)
		l.doc.SetLineWidth(0.4)
		l.doc.Line(l.left, l.y-lineH*0.4, l.left+l.width, l.y-lineH*0.4)
		l.y += 1.5
	}
}

func (l *pdfLayout) paragraph(text string, indent int) {
	clean := l.clean(text)
	if clean == "" {
		return
	}

	x := l.left + float64(indent)*indentStep
	l.doc.SetFont("Helvetica", "", 10)
	l.doc.SetTextColor(31, 41, 51)
	for _, ln := range l.doc.SplitText(clean, l.width-float64(indent)*indentStep) {
		l.ensure(bodyLineH)
		l.doc.Text(x, l.y, ln)
		l.y += bodyLineH
	}
}

func (l *pdfLayout) listItem(marker, text string, indent int) {
	clean := l.clean(text)
	if clean == "" {
		return
	}

	markerX := l.left + float64(indent)*indentStep
	textX := markerX + markerSlot
	textW := l.width - float64(indent)*indentStep - markerSlot

	l.doc.SetFont("Helvetica", "", 10)
	l.doc.SetTextColor(31, 41, 51)
	first := true
	for _, ln := range l.doc.SplitText(clean, textW) {
		l.ensure(bodyLineH)
		if first {
			l.doc.Text(markerX, l.y, marker)
			first = false
		}
		l.doc.Text(textX, l.y, ln)
		l.y += bodyLineH
	}
}

func (l *pdfLayout) codeLine(text string) {
	clean := markdown.NormalizeForPDF(text)
	clean = strings.ReplaceAll(clean, "\t", "    ")

	l.ensure(codeLineH)
	l.doc.SetFillColor(243, 244, 246)
	l.doc.Rect(l.left, l.y-codeLineH+1.2, l.width, codeLineH, "F")
	l.doc.SetFont("Courier", "", 9)
	l.doc.SetTextColor(31, 41, 51)
	l.doc.Text(l.left+2, l.y, l.tr(clean))
	l.y += codeLineH
}

// ensure breaks to a new page when the next line would cross the printable
// bottom.
func (l *pdfLayout) ensure(lineH float64) {
	if l.y+lineH > l.bottom {
		l.doc.AddPage()
		l.y = l.top
	}
	if l.y == l.top {
		l.y += lineH
	}
}

// clean prepares inline text for the latin-1 core fonts
func (l *pdfLayout) clean(text string) string {
	return l.tr(markdown.NormalizeForPDF(markdown.StripEmoji(text)))
}

func hexToRGB(hex string) (int, int, int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 31, 41, 51
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 31, 41, 51
	}
	return int(v >> 16), int((v >> 8) & 0xFF), int(v & 0xFF)
}
