// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package markdown

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// LineKind classifies one layout line for the PDF renderer
type LineKind int

const (
	// LineBlank is vertical breathing room between blocks
	LineBlank LineKind = iota

	// LineH1 is a top-level heading
	LineH1

	// LineH2 is a section heading
	LineH2

	// LineH3 is a sub-section heading (deeper levels clamp here)
	LineH3

	// LineBullet is an unordered list item
	LineBullet

	// LineNumbered is an ordered list item
	LineNumbered

	// LineCode is one line inside a fenced or indented code block
	LineCode

	// LineParagraph is ordinary body text
	LineParagraph
)

// Line is one classified layout line. Text carries no markdown markers;
// structure lives in Kind, Indent and Ordinal.
type Line struct {
	Kind    LineKind
	Text    string
	Indent  int
	Ordinal int
}

// Lines flattens a markdown document into classified layout lines for the
// paged renderer. Classification comes from the parse tree, so stray
// characters at line starts never masquerade as structure. Inline content is
// reduced the way the PDF wants it: links keep their text, bare URLs drop,
// emphasis and code markers unwrap.
func Lines(md string) []Line {
	src := []byte(md)
	var out []Line
	appendBlockLines(&out, parse(src), src, 0)

	// trim leading and trailing blanks
	for len(out) > 0 && out[0].Kind == LineBlank {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1].Kind == LineBlank {
		out = out[:len(out)-1]
	}
	return out
}

func appendBlockLines(out *[]Line, n ast.Node, src []byte, indent int) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Heading:
			kind := LineH3
			switch v.Level {
			case 1:
				kind = LineH1
			case 2:
				kind = LineH2
			}
			*out = append(*out, Line{Kind: kind, Text: inlineText(v, src)})
			*out = append(*out, Line{Kind: LineBlank})

		case *ast.Paragraph:
			appendWrappedText(out, inlineText(v, src), LineParagraph, indent, 0)
			*out = append(*out, Line{Kind: LineBlank})

		case *ast.List:
			appendListLines(out, v, src, indent)
			*out = append(*out, Line{Kind: LineBlank})

		case *ast.FencedCodeBlock:
			appendCodeLines(out, v.Lines(), src)
			*out = append(*out, Line{Kind: LineBlank})

		case *ast.CodeBlock:
			appendCodeLines(out, v.Lines(), src)
			*out = append(*out, Line{Kind: LineBlank})

		case *ast.Blockquote:
			appendBlockLines(out, v, src, indent+1)

		case *east.Table:
			for row := v.FirstChild(); row != nil; row = row.NextSibling() {
				var cells []string
				for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
					cells = append(cells, inlineText(cell, src))
				}
				*out = append(*out, Line{Kind: LineParagraph, Text: strings.Join(cells, " | "), Indent: indent})
			}
			*out = append(*out, Line{Kind: LineBlank})

		case *ast.ThematicBreak:
			*out = append(*out, Line{Kind: LineBlank})

		default:
			if c.Type() == ast.TypeBlock {
				appendBlockLines(out, c, src, indent)
			}
		}
	}
}

func appendListLines(out *[]Line, list *ast.List, src []byte, indent int) {
	ordinal := list.Start
	if ordinal == 0 {
		ordinal = 1
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		first := true
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch v := c.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				kind := LineBullet
				ord := 0
				if list.IsOrdered() {
					kind = LineNumbered
					ord = ordinal
				}
				if !first {
					// continuation block inside the same item
					kind = LineParagraph
					ord = 0
				}
				appendWrappedText(out, inlineText(c, src), kind, indent, ord)
				first = false
			case *ast.List:
				appendListLines(out, v, src, indent+1)
			case *ast.FencedCodeBlock:
				appendCodeLines(out, v.Lines(), src)
			}
		}
		if list.IsOrdered() {
			ordinal++
		}
	}
}

// appendWrappedText splits soft-wrapped source text into separate layout
// lines; the renderer re-wraps to the page width anyway.
func appendWrappedText(out *[]Line, text string, kind LineKind, indent, ordinal int) {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k := kind
		ord := ordinal
		if i > 0 && (kind == LineBullet || kind == LineNumbered) {
			k = LineParagraph
			ord = 0
		}
		*out = append(*out, Line{Kind: k, Text: p, Indent: indent, Ordinal: ord})
	}
}

func appendCodeLines(out *[]Line, segments *text.Segments, src []byte) {
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		line := strings.TrimRight(string(seg.Value(src)), "\n")
		*out = append(*out, Line{Kind: LineCode, Text: line})
	}
}

// inlineText renders a block's inline children to plain text: links keep
// their label, autolinked bare URLs vanish, code spans keep content.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	appendInline(&b, n, src)
	return strings.TrimSpace(b.String())
}

func appendInline(b *strings.Builder, n ast.Node, src []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			b.Write(v.Segment.Value(src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(v.Value)
		case *ast.AutoLink:
			// bare URLs carry no reading value on paper
		default:
			appendInline(b, c, src)
		}
	}
}
