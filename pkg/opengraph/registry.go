package opengraph

import (
	"strings"
	"sync"
)

// OpenGraphSchemaURI is the schema URI of the default og namespace.
const OpenGraphSchemaURI = "http://ogp.me/ns#"

// DefaultPrefix is the prefix assumed when a document declares no namespaces.
const DefaultPrefix = "og"

// wellKnownPrefixes are the ogp.me vertical namespaces, registered without
// required elements under http://ogp.me/ns/<prefix>#.
var wellKnownPrefixes = []string{
	"article",
	"book",
	"books",
	"music",
	"video",
	"product",
	"profile",
	"place",
	"business",
	"fitness",
	"restaurant",
}

// Registry is an immutable catalogue of known namespaces.
//
// A Registry is never modified after construction: With and Without return a
// new Registry, so a value can be shared freely between goroutines and a
// parse always sees one consistent catalogue.
type Registry struct {
	order    []string
	byPrefix map[string]RegistryNamespace
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the built-in catalogue: og (requiring title, type,
// image and url) plus the well-known ogp.me sub-namespaces.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		r.add(DefaultPrefix, OpenGraphSchemaURI, "title", "type", "image", "url")
		for _, p := range wellKnownPrefixes {
			r.add(p, "http://ogp.me/ns/"+p+"#")
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byPrefix: map[string]RegistryNamespace{}}
}

// Lookup finds a namespace by prefix, ignoring case. Absence is not an error.
func (r *Registry) Lookup(prefix string) (RegistryNamespace, bool) {
	if r == nil {
		return RegistryNamespace{}, false
	}
	ns, ok := r.byPrefix[strings.ToLower(prefix)]
	return ns, ok
}

// Has reports whether prefix is registered.
func (r *Registry) Has(prefix string) bool {
	_, ok := r.Lookup(prefix)
	return ok
}

// With returns a copy of the registry with prefix bound to schemaURI and the
// given required elements. An existing registration for prefix is replaced
// in place, keeping its position.
func (r *Registry) With(prefix, schemaURI string, required ...string) *Registry {
	c := r.clone()
	c.add(prefix, schemaURI, required...)
	return c
}

// Without returns a copy of the registry with prefix removed.
func (r *Registry) Without(prefix string) *Registry {
	c := r.clone()
	key := strings.ToLower(prefix)
	if _, ok := c.byPrefix[key]; !ok {
		return c
	}
	delete(c.byPrefix, key)
	for i, p := range c.order {
		if p == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return c
}

// Namespaces returns the registered namespaces in registration order.
func (r *Registry) Namespaces() []RegistryNamespace {
	if r == nil {
		return nil
	}
	out := make([]RegistryNamespace, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, r.byPrefix[p])
	}
	return out
}

// Len returns the number of registered namespaces.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

func (r *Registry) add(prefix, schemaURI string, required ...string) {
	key := strings.ToLower(prefix)
	req := make([]string, 0, len(required))
	for _, name := range required {
		if name = strings.TrimSpace(name); name != "" {
			req = append(req, strings.ToLower(name))
		}
	}
	if _, exists := r.byPrefix[key]; !exists {
		r.order = append(r.order, key)
	}
	r.byPrefix[key] = RegistryNamespace{
		Namespace: Namespace{Prefix: key, SchemaURI: schemaURI},
		Required:  req,
	}
}

func (r *Registry) clone() *Registry {
	c := NewRegistry()
	if r == nil {
		return c
	}
	c.order = make([]string, len(r.order))
	copy(c.order, r.order)
	for k, v := range r.byPrefix {
		c.byPrefix[k] = v
	}
	return c
}
