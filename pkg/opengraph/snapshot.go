package opengraph

import (
	"fmt"
	"strings"
)

// Snapshot is a plain, serializable view of a graph used for CLI output and
// for the snapshot archive.
type Snapshot struct {
	Type        string            `json:"type" yaml:"type"`
	Title       string            `json:"title" yaml:"title"`
	Image       string            `json:"image,omitempty" yaml:"image,omitempty"`
	URL         string            `json:"url,omitempty" yaml:"url,omitempty"`
	OriginalURL string            `json:"original_url,omitempty" yaml:"original_url,omitempty"`
	Namespaces  []Namespace       `json:"namespaces" yaml:"namespaces"`
	Elements    []ElementSnapshot `json:"elements" yaml:"elements"`
}

// ElementSnapshot is one root element with its properties.
type ElementSnapshot struct {
	Key        string             `json:"key" yaml:"key"`
	Value      string             `json:"value" yaml:"value"`
	Properties []PropertySnapshot `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// PropertySnapshot is one property of a root element.
type PropertySnapshot struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Snapshot captures the graph in serialization order.
func (g *OpenGraph) Snapshot() Snapshot {
	s := Snapshot{
		Type:        g.typ,
		Title:       g.title,
		OriginalURL: g.originalURL,
		Namespaces:  g.namespaces.All(),
		Elements:    []ElementSnapshot{},
	}
	if g.image != nil {
		s.Image = g.image.String()
	}
	if g.url != nil {
		s.URL = g.url.String()
	}

	g.metadata.each(func(key string, root *StructuredMetadata) {
		e := ElementSnapshot{Key: key, Value: root.value}
		root.properties.each(func(name string, p *PropertyMetadata) {
			e.Properties = append(e.Properties, PropertySnapshot{Name: name, Value: p.value})
		})
		s.Elements = append(s.Elements, e)
	})
	return s
}

// FromSnapshot rebuilds a graph from a snapshot. Element keys must name a
// namespace listed in the snapshot.
func FromSnapshot(s Snapshot, reg *Registry) (*OpenGraph, error) {
	g := newGraph(reg)
	g.originalURL = s.OriginalURL
	for _, ns := range s.Namespaces {
		g.namespaces.bind(strings.ToLower(ns.Prefix), ns)
	}

	for _, e := range s.Elements {
		prefix, name, ok := strings.Cut(e.Key, ":")
		if !ok || name == "" {
			return nil, fmt.Errorf("snapshot element key %q has no prefix", e.Key)
		}
		ns, ok := g.namespaces.Get(strings.ToLower(prefix))
		if !ok {
			return nil, fmt.Errorf("snapshot element %q uses undeclared namespace %q", e.Key, prefix)
		}
		root := NewStructuredMetadata(ns, name, e.Value)
		for _, p := range e.Properties {
			root.AttachProperty(NewPropertyMetadata(p.Name, p.Value))
		}
		g.AddMetadata(root)
	}

	g.deriveScalars()
	return g, nil
}
