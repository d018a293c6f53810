// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

// Package markdown is the single transformation layer between agent output
// and every surface that displays or exports it. All conversions share one
// GFM parse tree; no caller re-parses or regex-rewrites markdown on its own.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/nexuscommand/nexusdeck/pkg/logger"
)

var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&externalLinkRenderer{}, 100),
		),
	),
)

// ToHTML converts markdown to an HTML fragment. Every anchor carries
// target="_blank" rel="noopener noreferrer" so exported documents never hand
// an opener reference to the linked page. On a conversion error the raw
// input is returned and the error logged; rendering never fails the caller.
func ToHTML(md string) string {
	var buf strings.Builder
	if err := engine.Convert([]byte(md), &buf); err != nil {
		logger.ErrorCF("markdown", "Markdown conversion failed", map[string]any{"error": err.Error()})
		return md
	}
	return strings.TrimSpace(buf.String())
}

// parse returns the GFM parse tree for a markdown document
func parse(src []byte) ast.Node {
	return engine.Parser().Parse(text.NewReader(src))
}

// externalLinkRenderer replaces the stock anchor renderer so the hardened
// attributes come out of the render itself instead of a post-pass over the
// emitted HTML.
type externalLinkRenderer struct{}

func (r *externalLinkRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
}

func (r *externalLinkRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	n := node.(*ast.Link)
	_, _ = w.WriteString(`<a href="`)
	if !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_, _ = w.WriteString(`" target="_blank" rel="noopener noreferrer"`)
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

func (r *externalLinkRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.AutoLink)
	url := n.URL(source)
	_, _ = w.WriteString(`<a href="`)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		_, _ = w.WriteString("mailto:")
	}
	if !html.IsDangerousURL(url) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(url, false)))
	}
	_, _ = w.WriteString(`" target="_blank" rel="noopener noreferrer">`)
	_, _ = w.Write(util.EscapeHTML(n.Label(source)))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}
