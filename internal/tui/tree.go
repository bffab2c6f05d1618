package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vvka-141/ogmi/pkg/opengraph"
)

// RenderGraph draws a snapshot as an indented tree. Styles are applied only
// when styled is true, so piped output stays free of escape sequences.
func RenderGraph(s opengraph.Snapshot, styled bool) string {
	paint := func(style lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return style.Render(text)
	}

	var b strings.Builder

	title := s.Title
	if title == "" {
		title = "(untitled)"
	}
	b.WriteString(paint(TitleStyle, title))
	b.WriteByte('\n')

	fields := []struct{ label, value string }{
		{"type", s.Type},
		{"url", s.URL},
		{"image", s.Image},
		{"source", s.OriginalURL},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString("  " + paint(MutedStyle, padRight(f.label, 7)) + paint(ValueStyle, f.value) + "\n")
	}

	if len(s.Namespaces) > 0 {
		b.WriteString("\n" + paint(SectionStyle, "Namespaces") + "\n")
		for _, ns := range s.Namespaces {
			b.WriteString("  " + paint(KeyStyle, ns.Prefix+":") + " " + ns.SchemaURI + "\n")
		}
	}

	b.WriteString("\n" + paint(SectionStyle, "Elements") + "\n")
	if len(s.Elements) == 0 {
		b.WriteString("  " + paint(MutedStyle, "(none)") + "\n")
	}
	for _, e := range s.Elements {
		b.WriteString("  " + paint(KeyStyle, e.Key) + " = " + paint(ValueStyle, e.Value) + "\n")
		for i, p := range e.Properties {
			branch := SymbolBranch
			if i == len(e.Properties)-1 {
				branch = SymbolLastBranch
			}
			b.WriteString("    " + paint(MutedStyle, branch) + " " + paint(PropertyStyle, p.Name) + " = " + paint(ValueStyle, p.Value) + "\n")
		}
	}

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
