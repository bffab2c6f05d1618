// Package opengraph extracts, validates and renders Open Graph metadata.
//
// A document is parsed in four steps. The namespaces it declares are
// resolved from the head prefix attribute, then from html xmlns:*
// attributes, falling back to og. Every meta node whose property (or name)
// carries a resolvable prefix is folded into a tree of root elements
// (og:image) and their properties (og:image:width). Type, title, image and
// url are derived from the tree. Finally, when requested, the required
// elements of each active namespace are checked.
//
// Namespaces are looked up in a Registry. DefaultRegistry returns the
// built-in catalogue; With and Without derive new registries, which are
// passed to a parse with WithRegistry:
//
//	reg := opengraph.DefaultRegistry().With("gah", "http://wwww.geoffhorsey.com/ogns#", "content")
//	g, err := opengraph.ParseHTML(page, opengraph.WithRegistry(reg), opengraph.WithValidation(true))
//
// Graphs can also be built directly with MakeGraph and rendered back to
// markup with String.
package opengraph
