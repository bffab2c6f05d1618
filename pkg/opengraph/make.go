package opengraph

import (
	"fmt"
	"strings"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// GraphOption supplies an optional field to MakeGraph.
type GraphOption func(*graphOptions)

type graphOptions struct {
	description      string
	siteName         string
	audio            string
	video            string
	locale           string
	localeAlternates []string
	determiner       string
	registry         *Registry
}

// WithDescription sets og:description.
func WithDescription(s string) GraphOption {
	return func(o *graphOptions) { o.description = s }
}

// WithSiteName sets og:site_name.
func WithSiteName(s string) GraphOption {
	return func(o *graphOptions) { o.siteName = s }
}

// WithAudio sets og:audio.
func WithAudio(s string) GraphOption {
	return func(o *graphOptions) { o.audio = s }
}

// WithVideo sets og:video.
func WithVideo(s string) GraphOption {
	return func(o *graphOptions) { o.video = s }
}

// WithLocale sets og:locale.
func WithLocale(s string) GraphOption {
	return func(o *graphOptions) { o.locale = s }
}

// WithLocaleAlternates adds og:locale:alternate values.
func WithLocaleAlternates(locales ...string) GraphOption {
	return func(o *graphOptions) { o.localeAlternates = append(o.localeAlternates, locales...) }
}

// WithDeterminer sets og:determiner.
func WithDeterminer(s string) GraphOption {
	return func(o *graphOptions) { o.determiner = s }
}

// WithGraphRegistry builds the graph against reg instead of DefaultRegistry().
func WithGraphRegistry(reg *Registry) GraphOption {
	return func(o *graphOptions) { o.registry = reg }
}

// MakeGraph builds a graph from literal values. image and url must be
// absolute URLs; optional fields are emitted only when non-blank.
func MakeGraph(title, typ, image, url string, opts ...GraphOption) (*OpenGraph, error) {
	o := graphOptions{registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(&o)
	}

	imageURL := absoluteURL(image)
	if imageURL == nil {
		return nil, fmt.Errorf("image %q is not an absolute URL: %w", image, ogmi.ErrInvalidGraph)
	}
	pageURL := absoluteURL(url)
	if pageURL == nil {
		return nil, fmt.Errorf("url %q is not an absolute URL: %w", url, ogmi.ErrInvalidGraph)
	}

	g := newGraph(o.registry)
	og, ok := g.registry.Lookup(DefaultPrefix)
	if !ok {
		return nil, fmt.Errorf("registry has no %q namespace: %w", DefaultPrefix, ogmi.ErrInvalidGraph)
	}
	add := func(name, value string) *StructuredMetadata {
		m := NewStructuredMetadata(og.Namespace, name, value)
		g.AddMetadata(m)
		return m
	}

	add("title", title)
	add("type", typ)
	add("image", image)
	add("url", url)

	var locale *StructuredMetadata
	for _, f := range []struct{ name, value string }{
		{"description", o.description},
		{"site_name", o.siteName},
		{"audio", o.audio},
		{"video", o.video},
		{"locale", o.locale},
		{"determiner", o.determiner},
	} {
		if strings.TrimSpace(f.value) == "" {
			continue
		}
		m := add(f.name, f.value)
		if f.name == "locale" {
			locale = m
		}
	}

	for _, alt := range o.localeAlternates {
		if strings.TrimSpace(alt) == "" {
			continue
		}
		if locale != nil {
			locale.AddProperty("alternate", alt)
			continue
		}
		add("locale:alternate", alt)
	}

	g.typ = typ
	g.title = title
	g.image = imageURL
	g.url = pageURL
	return g, nil
}
