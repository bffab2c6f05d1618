package opengraph

import "strings"

// element holds the fields shared by root and property metadata.
type element struct {
	namespace Namespace
	name      string
	value     string
}

// setNamespace binds the namespace once; later calls are ignored.
func (e *element) setNamespace(ns Namespace) {
	if e.namespace.IsZero() {
		e.namespace = ns
	}
}

// StructuredMetadata is a root element such as og:image. It owns the
// properties whose source keys extend its own (og:image:width, og:image:alt).
type StructuredMetadata struct {
	element
	properties *multimap[*PropertyMetadata]
}

// NewStructuredMetadata creates a root element. name is the local,
// unprefixed name, e.g. "image" or "locale:alternate".
func NewStructuredMetadata(ns Namespace, name, value string) *StructuredMetadata {
	return &StructuredMetadata{
		element:    element{namespace: ns, name: name, value: value},
		properties: newMultimap[*PropertyMetadata](),
	}
}

// Namespace returns the namespace the element belongs to.
func (m *StructuredMetadata) Namespace() Namespace { return m.namespace }

// Name returns the local name.
func (m *StructuredMetadata) Name() string { return m.name }

// Value returns the content value.
func (m *StructuredMetadata) Value() string { return m.value }

// Key returns the qualified "prefix:name" key.
func (m *StructuredMetadata) Key() string {
	return m.namespace.Prefix + ":" + m.name
}

// Properties returns a read-only view of the element's properties.
func (m *StructuredMetadata) Properties() PropertyMap {
	return PropertyMap{m: m.properties}
}

// PropertyValue returns the value of the first property named name, or "".
func (m *StructuredMetadata) PropertyValue(name string) string {
	list := m.properties.items[name]
	if len(list) == 0 {
		return ""
	}
	return list[0].value
}

// HasProperty reports whether a property named name is attached.
func (m *StructuredMetadata) HasProperty(name string) bool {
	return m.properties.has(name)
}

// AddProperty attaches a new property. A name given in qualified form
// ("og:image:width" or "image:width") is reduced to its local part.
func (m *StructuredMetadata) AddProperty(name, value string) *PropertyMetadata {
	name = strings.ToLower(name)
	name = strings.TrimPrefix(name, m.namespace.Prefix+":")
	name = strings.TrimPrefix(name, m.name+":")

	p := NewPropertyMetadata(name, value)
	m.AttachProperty(p)
	return p
}

// AttachProperty adopts p: the property inherits this element's namespace
// and records this element as its parent.
func (m *StructuredMetadata) AttachProperty(p *PropertyMetadata) {
	p.parent = m
	p.setNamespace(m.namespace)
	m.properties.append(p.name, p)
}

// ownerPrefix is the lower-case raw key prefix shared by all keys this
// element owns: "prefix:name:".
func (m *StructuredMetadata) ownerPrefix() string {
	return m.namespace.Prefix + ":" + m.name + ":"
}

// Owns reports whether rawKey names a property of this element: the key
// must start with "prefix:name:" (ignoring case) and carry something after it.
func (m *StructuredMetadata) Owns(rawKey string) bool {
	return ownsKey(m.ownerPrefix(), strings.ToLower(rawKey))
}

func ownsKey(ownerPrefix, lowerKey string) bool {
	return strings.HasPrefix(lowerKey, ownerPrefix) && lowerKey != ownerPrefix
}

// PropertyMetadata is a nested element such as og:image:width.
type PropertyMetadata struct {
	element
	parent *StructuredMetadata
}

// NewPropertyMetadata creates a detached property; it receives its namespace
// and parent when attached to a StructuredMetadata.
func NewPropertyMetadata(name, value string) *PropertyMetadata {
	return &PropertyMetadata{element: element{name: name, value: value}}
}

// Namespace returns the namespace inherited from the parent.
func (p *PropertyMetadata) Namespace() Namespace { return p.namespace }

// Name returns the local property name, e.g. "width".
func (p *PropertyMetadata) Name() string { return p.name }

// Value returns the content value.
func (p *PropertyMetadata) Value() string { return p.value }

// Parent returns the owning root element, or nil while detached.
func (p *PropertyMetadata) Parent() *StructuredMetadata { return p.parent }

// Key returns the compound key "prefix:parent:name".
func (p *PropertyMetadata) Key() string {
	if p.parent == nil {
		return p.namespace.Prefix + ":" + p.name
	}
	return p.namespace.Prefix + ":" + p.parent.name + ":" + p.name
}
