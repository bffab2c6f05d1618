package opengraph

// multimap is an insertion-ordered map from key to an append-only list.
type multimap[T any] struct {
	keys  []string
	items map[string][]T
}

func newMultimap[T any]() *multimap[T] {
	return &multimap[T]{items: map[string][]T{}}
}

func (m *multimap[T]) append(key string, v T) {
	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.items[key] = append(m.items[key], v)
}

func (m *multimap[T]) get(key string) []T {
	list := m.items[key]
	if len(list) == 0 {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}

func (m *multimap[T]) has(key string) bool {
	_, ok := m.items[key]
	return ok
}

func (m *multimap[T]) len() int {
	return len(m.keys)
}

func (m *multimap[T]) orderedKeys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// each visits every value, grouped by key in first-seen key order.
func (m *multimap[T]) each(fn func(key string, v T)) {
	for _, k := range m.keys {
		for _, v := range m.items[k] {
			fn(k, v)
		}
	}
}

// PropertyMap is a read-only, ordered view of a root element's properties.
type PropertyMap struct {
	m *multimap[*PropertyMetadata]
}

// Keys returns the property names in first-seen order.
func (p PropertyMap) Keys() []string {
	if p.m == nil {
		return nil
	}
	return p.m.orderedKeys()
}

// Get returns the properties named name in attachment order, or nil.
func (p PropertyMap) Get(name string) []*PropertyMetadata {
	if p.m == nil {
		return nil
	}
	return p.m.get(name)
}

// Has reports whether at least one property named name exists.
func (p PropertyMap) Has(name string) bool {
	return p.m != nil && p.m.has(name)
}

// Len returns the number of distinct property names.
func (p PropertyMap) Len() int {
	if p.m == nil {
		return 0
	}
	return p.m.len()
}

// MetadataMap is a read-only, ordered view of a graph's root elements keyed
// by "prefix:localname".
type MetadataMap struct {
	m *multimap[*StructuredMetadata]
}

// Keys returns the "prefix:localname" keys in first-seen order.
func (v MetadataMap) Keys() []string {
	if v.m == nil {
		return nil
	}
	return v.m.orderedKeys()
}

// Get returns the root elements stored under key, or nil.
func (v MetadataMap) Get(key string) []*StructuredMetadata {
	if v.m == nil {
		return nil
	}
	return v.m.get(key)
}

// Has reports whether key is present.
func (v MetadataMap) Has(key string) bool {
	return v.m != nil && v.m.has(key)
}

// Len returns the number of distinct keys.
func (v MetadataMap) Len() int {
	if v.m == nil {
		return 0
	}
	return v.m.len()
}

// All returns every root element, grouped by key in first-seen key order.
func (v MetadataMap) All() []*StructuredMetadata {
	if v.m == nil {
		return nil
	}
	var out []*StructuredMetadata
	v.m.each(func(_ string, e *StructuredMetadata) {
		out = append(out, e)
	})
	return out
}

// NamespaceMap is a read-only, ordered view of the namespaces active on a graph.
type NamespaceMap struct {
	order    []string
	byPrefix map[string]Namespace
}

func newNamespaceMap() *NamespaceMap {
	return &NamespaceMap{byPrefix: map[string]Namespace{}}
}

// Get returns the namespace bound to prefix.
func (n *NamespaceMap) Get(prefix string) (Namespace, bool) {
	ns, ok := n.byPrefix[prefix]
	return ns, ok
}

// Has reports whether prefix is bound.
func (n *NamespaceMap) Has(prefix string) bool {
	_, ok := n.byPrefix[prefix]
	return ok
}

// Keys returns the prefixes in encounter order.
func (n *NamespaceMap) Keys() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// All returns the namespaces in encounter order.
func (n *NamespaceMap) All() []Namespace {
	out := make([]Namespace, 0, len(n.order))
	for _, p := range n.order {
		out = append(out, n.byPrefix[p])
	}
	return out
}

// Len returns the number of bound prefixes.
func (n *NamespaceMap) Len() int {
	return len(n.order)
}

// bind adds prefix -> ns unless the prefix is already bound.
func (n *NamespaceMap) bind(prefix string, ns Namespace) {
	if _, ok := n.byPrefix[prefix]; ok {
		return
	}
	n.order = append(n.order, prefix)
	n.byPrefix[prefix] = ns
}
