package opengraph

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

var urlLikeKey = regexp.MustCompile(`image|url`)

// ParseHTML extracts the Open Graph tree from an HTML document.
//
// Meta nodes whose key has no prefix, whose prefix resolves to no namespace,
// or whose content is blank are dropped. With WithValidation(true) a missing
// required element fails the parse with a *SpecificationError.
func ParseHTML(content string, opts ...Option) (*OpenGraph, error) {
	o := newParseOptions(opts)
	return parseDocument(content, o)
}

func parseDocument(content string, o parseOptions) (*OpenGraph, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	g := newGraph(o.registry)
	g.originalHTML = content
	g.originalURL = o.originalURL
	g.namespaces = resolveNamespaces(doc, o.registry)

	p := newTreeBuilder(g, o.logger)
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		p.consume(s)
	})
	g.deriveScalars()

	if o.validate {
		if err := Validate(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// treeBuilder folds meta nodes into a graph. Roots are indexed by their
// "prefix:name" bucket (the graph's own metadata map) and by creation order
// so that the fallback attachment never scans every root.
type treeBuilder struct {
	graph  *OpenGraph
	logger ogmi.Logger

	last    *StructuredMetadata
	created map[*StructuredMetadata]int
	// cursors maps "bucket\x00property" to the index of the first root in
	// the bucket that may still lack the property. Roots only gain
	// properties, so the cursor never moves backwards.
	cursors map[string]int
}

func newTreeBuilder(g *OpenGraph, logger ogmi.Logger) *treeBuilder {
	return &treeBuilder{
		graph:   g,
		logger:  logger,
		created: map[*StructuredMetadata]int{},
		cursors: map[string]int{},
	}
}

func (b *treeBuilder) consume(s *goquery.Selection) {
	rawKey, ok := s.Attr("property")
	if !ok {
		rawKey, ok = s.Attr("name")
	}
	if !ok {
		return
	}
	idx := strings.Index(rawKey, ":")
	if idx < 0 {
		return
	}

	prefix := strings.ToLower(rawKey[:idx])
	ns, ok := b.namespace(prefix)
	if !ok {
		b.verbose("dropping %q: unknown namespace %q", rawKey, prefix)
		return
	}

	value, _ := s.Attr("content")
	if strings.TrimSpace(value) == "" {
		b.verbose("dropping %q: empty content", rawKey)
		return
	}

	cleanKey := strings.ToLower(rawKey[idx+1:])
	if urlLikeKey.MatchString(cleanKey) {
		value = strings.ReplaceAll(value, "&amp;", "&")
	}

	lowerKey := strings.ToLower(rawKey)
	if b.last != nil && b.last.Owns(lowerKey) {
		b.last.AddProperty(cleanKey, value)
		return
	}
	if root, propName := b.findOwner(prefix, cleanKey); root != nil {
		root.AttachProperty(NewPropertyMetadata(propName, value))
		return
	}

	root := NewStructuredMetadata(ns, cleanKey, value)
	b.created[root] = len(b.created)
	b.graph.AddMetadata(root)
	b.last = root
}

// namespace resolves prefix against the document first and the registry
// second; a registry hit becomes active on the document.
func (b *treeBuilder) namespace(prefix string) (Namespace, bool) {
	if ns, ok := b.graph.namespaces.Get(prefix); ok {
		return ns, true
	}
	entry, ok := b.graph.registry.Lookup(prefix)
	if !ok {
		return Namespace{}, false
	}
	b.graph.namespaces.bind(prefix, entry.Namespace)
	return entry.Namespace, true
}

// findOwner returns the earliest created root that owns prefix:cleanKey and
// has no property of that name yet, together with the property name.
//
// A root named N owns cleanKey exactly when cleanKey starts with "N:", so the
// candidate buckets are the colon-delimited prefixes of cleanKey.
func (b *treeBuilder) findOwner(prefix, cleanKey string) (*StructuredMetadata, string) {
	var (
		best     *StructuredMetadata
		bestName string
	)
	for i := 0; i < len(cleanKey); i++ {
		if cleanKey[i] != ':' {
			continue
		}
		parentName, propName := cleanKey[:i], cleanKey[i+1:]
		if propName == "" {
			continue
		}
		bucket := prefix + ":" + parentName
		roots := b.graph.metadata.items[bucket]
		if len(roots) == 0 {
			continue
		}

		cursorKey := bucket + "\x00" + propName
		pos := b.cursors[cursorKey]
		for pos < len(roots) && roots[pos].HasProperty(propName) {
			pos++
		}
		b.cursors[cursorKey] = pos
		if pos == len(roots) {
			continue
		}

		candidate := roots[pos]
		if best == nil || b.created[candidate] < b.created[best] {
			best, bestName = candidate, propName
		}
	}
	return best, bestName
}

func (b *treeBuilder) verbose(format string, args ...interface{}) {
	if b.logger != nil {
		b.logger.Verbose(format, args...)
	}
}
