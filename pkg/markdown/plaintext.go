// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package markdown

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

var excessNewlines = regexp.MustCompile(`\n{3,}`)

// ToPlainText reduces markdown to clean reading text by walking the parse
// tree: fenced code blocks are dropped entirely, inline code keeps its
// content, heading and list markers disappear, links and images collapse to
// their text, emphasis is unwrapped. Emoji are stripped and runs of blank
// lines collapse to one.
func ToPlainText(md string) string {
	src := []byte(md)
	var b strings.Builder
	appendPlain(&b, parse(src), src)

	out := StripEmoji(b.String())
	out = excessNewlines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func appendPlain(b *strings.Builder, n ast.Node, src []byte) {
	switch v := n.(type) {
	case *ast.FencedCodeBlock:
		return

	case *ast.CodeBlock:
		// Indented code has no fence to drop; keep the raw lines.
		for i := 0; i < v.Lines().Len(); i++ {
			seg := v.Lines().At(i)
			b.Write(seg.Value(src))
		}
		return

	case *ast.Text:
		b.Write(v.Segment.Value(src))
		if v.SoftLineBreak() || v.HardLineBreak() {
			b.WriteByte('\n')
		}
		return

	case *ast.String:
		b.Write(v.Value)
		return

	case *ast.AutoLink:
		b.Write(v.Label(src))
		return

	case *ast.ThematicBreak:
		b.WriteString("\n")
		return

	case *east.Table:
		for row := v.FirstChild(); row != nil; row = row.NextSibling() {
			appendTableRow(b, row, src)
		}
		b.WriteByte('\n')
		return
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		appendPlain(b, c, src)
		switch c.(type) {
		case *ast.ListItem:
			// handled below by its own blocks
		case *ast.TextBlock, *ast.List:
			b.WriteByte('\n')
		default:
			if c.Type() == ast.TypeBlock {
				b.WriteString("\n\n")
			}
		}
	}
}

func appendTableRow(b *strings.Builder, row ast.Node, src []byte) {
	// TableHeader and TableRow both hold cells
	first := true
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if !first {
			b.WriteString(" | ")
		}
		first = false
		appendPlain(b, cell, src)
	}
	b.WriteByte('\n')
}

// SplitSentences splits cleaned text on sentence-terminal punctuation
// followed by whitespace. Terminal runs ("?!", "...") stay attached to
// their sentence; periods inside numbers do not split.
func SplitSentences(text string) []string {
	var sentences []string
	var b strings.Builder
	runes := []rune(text)

	flush := func() {
		if s := strings.TrimSpace(b.String()); s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		b.WriteRune(r)
		if !isSentenceTerminal(r) {
			continue
		}
		dots := 0
		if r == '.' {
			dots = 1
		}
		for i+1 < len(runes) && isSentenceTerminal(runes[i+1]) {
			i++
			b.WriteRune(runes[i])
			if runes[i] == '.' {
				dots++
			}
		}
		if dots >= 2 {
			// An ellipsis reads as a pause, not a sentence end.
			continue
		}
		if i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			flush()
		}
	}
	flush()
	return sentences
}

func isSentenceTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// StripEmoji removes characters in the emoji blocks the agents decorate
// their reports with: emoticons, miscellaneous symbols and pictographs,
// transport, the colored status shapes, supplemental symbols, the dingbat
// range, and the variation selector that turns text glyphs into emoji
// presentation.
func StripEmoji(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isEmoji(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F600 && r <= 0x1F64F,
		r >= 0x1F300 && r <= 0x1F5FF,
		r >= 0x1F680 && r <= 0x1F6FF,
		r >= 0x1F780 && r <= 0x1F7FF,
		r >= 0x1F900 && r <= 0x1F9FF,
		r >= 0x1FA00 && r <= 0x1FAFF,
		r >= 0x2600 && r <= 0x27BF,
		r == 0xFE0F:
		return true
	}
	return false
}

// NormalizeForPDF maps typographic punctuation to ASCII and drops anything
// the latin-1 core fonts cannot encode.
func NormalizeForPDF(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if rep, ok := pdfReplacements[r]; ok {
			b.WriteString(rep)
			continue
		}
		if r == '\n' || r == '\t' || (r >= 0x20 && r <= 0x7E) || (r >= 0xA0 && r <= 0xFF) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var pdfReplacements = map[rune]string{
	'‘': "'",
	'’': "'",
	'“': `"`,
	'”': `"`,
	'–': "-",
	'—': "--",
	'•': "-",
	'…': "...",
	' ': " ",
}
