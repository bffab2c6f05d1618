package opengraph

import (
	"html"
	"strings"
)

// String renders the graph as canonical meta markup. Roots appear grouped by
// key in first-seen order, each followed by its properties grouped by name.
func (g *OpenGraph) String() string {
	var sb strings.Builder
	g.metadata.each(func(_ string, root *StructuredMetadata) {
		writeRoot(&sb, root)
	})
	return sb.String()
}

// String renders the root element followed by its properties.
func (m *StructuredMetadata) String() string {
	var sb strings.Builder
	writeRoot(&sb, m)
	return sb.String()
}

// String renders the property as a single meta tag.
func (p *PropertyMetadata) String() string {
	var sb strings.Builder
	writeMeta(&sb, p.Key(), p.value)
	return sb.String()
}

func writeRoot(sb *strings.Builder, m *StructuredMetadata) {
	writeMeta(sb, m.Key(), m.value)
	m.properties.each(func(_ string, p *PropertyMetadata) {
		writeMeta(sb, p.Key(), p.value)
	})
}

func writeMeta(sb *strings.Builder, key, value string) {
	sb.WriteString(`<meta property="`)
	sb.WriteString(html.EscapeString(key))
	sb.WriteString(`" content="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`">`)
}
