package opengraph

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var headPrefixPattern = regexp.MustCompile(`(\w+):\s*(https?://\S+)`)

const xmlnsAttrPrefix = "xmlns:"

// resolveNamespaces determines the namespaces a document declares. The head
// prefix attribute wins over html xmlns:* attributes; with neither present
// the registry's og namespace is assumed. Resolution never fails.
func resolveNamespaces(doc *goquery.Document, reg *Registry) *NamespaceMap {
	out := newNamespaceMap()

	if prefix, ok := doc.Find("head").First().Attr("prefix"); ok && strings.TrimSpace(prefix) != "" {
		for _, m := range headPrefixPattern.FindAllStringSubmatch(prefix, -1) {
			key := strings.ToLower(m[1])
			if known, ok := reg.Lookup(key); ok {
				out.bind(key, known.Namespace)
				continue
			}
			out.bind(key, Namespace{Prefix: key, SchemaURI: m[2]})
		}
		if out.Len() > 0 {
			return out
		}
	}

	if root := doc.Find("html").First(); root.Length() > 0 {
		for _, attr := range root.Nodes[0].Attr {
			name := strings.ToLower(attr.Key)
			if !strings.HasPrefix(name, xmlnsAttrPrefix) {
				continue
			}
			key := strings.TrimPrefix(name, xmlnsAttrPrefix)
			if key == "" {
				continue
			}
			out.bind(key, Namespace{Prefix: key, SchemaURI: attr.Val})
		}
		if out.Len() > 0 {
			return out
		}
	}

	if og, ok := reg.Lookup(DefaultPrefix); ok {
		out.bind(DefaultPrefix, og.Namespace)
	} else {
		out.bind(DefaultPrefix, Namespace{Prefix: DefaultPrefix, SchemaURI: OpenGraphSchemaURI})
	}
	return out
}
