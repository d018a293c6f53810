// NexusDeck - Terminal console for the Nexus Command agent team
// License: MIT
//
// Copyright (c) 2026 NexusDeck contributors

package export

import (
	"fmt"
	"strings"

	"github.com/nexuscommand/nexusdeck/pkg/markdown"
	"github.com/nexuscommand/nexusdeck/pkg/transcript"
)

// statusBadges replaces the status emoji the agents embed in report tables
// with styled badge spans; purely decorative emoji around them are dropped
// because they render poorly outside a terminal.
var statusBadges = strings.NewReplacer(
	"🔴", `<span class="status-badge badge-red">RED</span>`,
	"🟠", `<span class="status-badge badge-orange">ORG</span>`,
	"🟡", `<span class="status-badge badge-yellow">YEL</span>`,
	"🟢", `<span class="status-badge badge-green">GRN</span>`,
	"⚠️", `<span class="status-badge badge-alert">!</span>`,
	"⚠", `<span class="status-badge badge-alert">!</span>`,
	"☑️", "✓",
	"☑", "✓",
	"📋", "",
	"📊", "",
	"📅", "",
	"📈", "",
	"💡", "",
	"🧾", "",
	"🧩", "",
	"📍", "",
)

func (e *Exporter) buildHTMLDocument(msg transcript.Message) string {
	profile := e.registry.Resolve(msg.Agent)
	fragment := statusBadges.Replace(markdown.ToHTML(msg.Content))
	title := documentTitle(msg.Content)
	timestamp := e.timestamp("2006-01-02 15:04:05")

	var footer strings.Builder
	if e.confidential {
		footer.WriteString("        <p><strong>NEXUS COMMAND | CONFIDENTIAL</strong></p>\n")
	} else {
		footer.WriteString("        <p><strong>NEXUS COMMAND</strong></p>\n")
	}
	fmt.Fprintf(&footer, "        <p>Generated on %s CST</p>\n", timestamp)
	fmt.Fprintf(&footer, "        <p>Prepared by %s — %s</p>\n", profile.Name, profile.Role)

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
%s    </style>
</head>
<body>
    <div class="report">
%s
    </div>
    <div class="report-footer">
%s    </div>
</body>
</html>
`, htmlEscape(title), e.documentCSS(profile.Color), fragment, footer.String())
}

// documentTitle takes the first top-level heading, falling back to a generic
// report title.
func documentTitle(md string) string {
	for _, line := range markdown.Lines(md) {
		if line.Kind == markdown.LineH1 {
			return line.Text
		}
	}
	return "Nexus Command Report"
}

// documentCSS derives the document palette from the active theme plus the
// producing agent's accent color.
func (e *Exporter) documentCSS(accent string) string {
	t := e.theme
	if accent == "" {
		accent = t.Primary
	}
	return fmt.Sprintf(`        body {
            font-family: 'Segoe UI', 'Helvetica Neue', Arial, sans-serif;
            line-height: 1.6;
            background: %[1]s;
            color: %[2]s;
            max-width: 880px;
            margin: 0 auto;
            padding: 32px 24px;
        }
        h1 {
            color: %[3]s;
            border-bottom: 2px solid %[3]s;
            padding-bottom: 8px;
        }
        h2, h3 { color: %[3]s; }
        a { color: %[4]s; }
        code {
            background: %[5]s;
            padding: 2px 5px;
            border-radius: 3px;
            font-family: 'SF Mono', Consolas, monospace;
            font-size: 0.9em;
        }
        pre {
            background: %[5]s;
            border: 1px solid %[6]s;
            border-radius: 6px;
            padding: 12px;
            overflow-x: auto;
        }
        pre code { background: none; padding: 0; }
        table { border-collapse: collapse; margin: 16px 0; width: 100%%; }
        th, td { border: 1px solid %[6]s; padding: 8px 12px; text-align: left; }
        th { background: %[5]s; }
        blockquote {
            border-left: 3px solid %[3]s;
            margin-left: 0;
            padding-left: 16px;
            color: %[7]s;
        }
        .status-badge {
            display: inline-block;
            padding: 1px 7px;
            border-radius: 10px;
            font-size: 0.75em;
            font-weight: 700;
            color: #fff;
        }
        .badge-red { background: #DC2626; }
        .badge-orange { background: #EA580C; }
        .badge-yellow { background: #CA8A04; }
        .badge-green { background: #059669; }
        .badge-alert { background: #B91C1C; }
        .report-footer {
            margin-top: 48px;
            padding-top: 16px;
            border-top: 1px solid %[6]s;
            font-size: 0.8em;
            color: %[7]s;
        }
        .report-footer p { margin: 2px 0; }
`, t.Background, t.Text, accent, t.Primary, t.Surface, t.Border, t.TextDim)
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func htmlEscape(s string) string {
	return htmlEscaper.Replace(s)
}
