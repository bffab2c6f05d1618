package opengraph

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// OpenGraph is the metadata extracted from one document, or built from
// literal values with MakeGraph. It is append-only while being built and
// should be treated as immutable once returned to the caller.
type OpenGraph struct {
	metadata   *multimap[*StructuredMetadata]
	namespaces *NamespaceMap
	registry   *Registry

	typ          string
	title        string
	image        *url.URL
	url          *url.URL
	originalURL  string
	originalHTML string
}

func newGraph(reg *Registry) *OpenGraph {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &OpenGraph{
		metadata:   newMultimap[*StructuredMetadata](),
		namespaces: newNamespaceMap(),
		registry:   reg,
	}
}

// Type returns the og:type value, or "".
func (g *OpenGraph) Type() string { return g.typ }

// Title returns the og:title value, or "".
func (g *OpenGraph) Title() string { return g.title }

// Image returns the absolute og:image URL, or nil when missing or malformed.
func (g *OpenGraph) Image() *url.URL { return cloneURL(g.image) }

// URL returns the absolute og:url URL, or nil when missing or malformed.
func (g *OpenGraph) URL() *url.URL { return cloneURL(g.url) }

// OriginalURL returns the address the document was fetched from, if any.
func (g *OpenGraph) OriginalURL() string { return g.originalURL }

// OriginalHTML returns the document text the graph was parsed from, if any.
func (g *OpenGraph) OriginalHTML() string { return g.originalHTML }

// Metadata returns a read-only view of the root elements keyed by "prefix:localname".
func (g *OpenGraph) Metadata() MetadataMap {
	return MetadataMap{m: g.metadata}
}

// Namespaces returns the namespaces active on this graph, in encounter order.
func (g *OpenGraph) Namespaces() *NamespaceMap {
	return g.namespaces
}

// Registry returns the registry the graph was built against.
func (g *OpenGraph) Registry() *Registry {
	return g.registry
}

// Elements returns the root elements stored under key. A key without a
// prefix is looked up in the og namespace; unknown keys yield nil.
func (g *OpenGraph) Elements(key string) []*StructuredMetadata {
	return g.metadata.get(qualify(key))
}

// Value returns the value of the first root element under key, or "".
func (g *OpenGraph) Value(key string) string {
	list := g.metadata.items[qualify(key)]
	if len(list) == 0 {
		return ""
	}
	return list[0].value
}

// AddMetadata appends a root element under its "prefix:name" key and binds
// its namespace on the graph if it is not already active.
func (g *OpenGraph) AddMetadata(m *StructuredMetadata) {
	g.namespaces.bind(m.namespace.Prefix, m.namespace)
	g.metadata.append(strings.ToLower(m.Key()), m)
}

// AddMetadataValue creates and appends a root element in a namespace taken
// from the graph's registry.
func (g *OpenGraph) AddMetadataValue(prefix, name, value string) (*StructuredMetadata, error) {
	ns, ok := g.registry.Lookup(prefix)
	if !ok {
		return nil, fmt.Errorf("prefix %q is not in the namespace registry: %w", prefix, ogmi.ErrUnknownNamespace)
	}
	m := NewStructuredMetadata(ns.Namespace, strings.ToLower(name), value)
	g.AddMetadata(m)
	return m, nil
}

// HeadPrefixAttributeValue renders the active namespaces as a head prefix
// attribute value: "og: http://ogp.me/ns# music: http://ogp.me/ns/music#".
func (g *OpenGraph) HeadPrefixAttributeValue() string {
	parts := make([]string, 0, g.namespaces.Len())
	for _, ns := range g.namespaces.All() {
		parts = append(parts, ns.String())
	}
	return strings.Join(parts, " ")
}

// HTMLXmlnsValues renders the active namespaces as html element xmlns
// attributes: `xmlns:og="http://ogp.me/ns#"`.
func (g *OpenGraph) HTMLXmlnsValues() string {
	parts := make([]string, 0, g.namespaces.Len())
	for _, ns := range g.namespaces.All() {
		parts = append(parts, fmt.Sprintf("xmlns:%s=%q", ns.Prefix, ns.SchemaURI))
	}
	return strings.Join(parts, " ")
}

// deriveScalars fills type, title, image and url from the parsed tree.
func (g *OpenGraph) deriveScalars() {
	g.typ = g.Value("og:type")
	g.title = g.Value("og:title")
	g.image = absoluteURL(g.Value("og:image"))
	g.url = absoluteURL(g.Value("og:url"))
}

func qualify(key string) string {
	key = strings.ToLower(key)
	if !strings.Contains(key, ":") {
		return DefaultPrefix + ":" + key
	}
	return key
}

// absoluteURL parses raw as an absolute URL. Anything else, including the
// empty string, yields nil. An empty path on a hierarchical URL becomes "/".
func absoluteURL(raw string) *url.URL {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return nil
	}
	if u.Opaque == "" && u.Host == "" {
		return nil
	}
	if u.Host != "" && u.Path == "" && u.RawPath == "" {
		u.Path = "/"
	}
	return u
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	if u.User != nil {
		user := *u.User
		c.User = &user
	}
	return &c
}
