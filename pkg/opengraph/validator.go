package opengraph

// Validate checks that every namespace active on g carries the elements its
// registry entry declares as required. Namespaces are visited in encounter
// order and required names in declaration order; the first missing element
// is reported as a *SpecificationError.
//
// Namespaces unknown to the registry (ad hoc prefixes declared in the head)
// have no requirements.
func Validate(g *OpenGraph) error {
	for _, ns := range g.namespaces.All() {
		entry, ok := g.registry.Lookup(ns.Prefix)
		if !ok {
			continue
		}
		for _, name := range entry.Required {
			if !g.metadata.has(ns.Prefix + ":" + name) {
				return &SpecificationError{Namespace: ns, Element: name}
			}
		}
	}
	return nil
}
