package opengraph

// Namespace binds a prefix to its schema URI (e.g. og -> http://ogp.me/ns#).
// The URI is kept as written; a malformed URI still yields a usable namespace.
type Namespace struct {
	Prefix    string `json:"prefix" yaml:"prefix"`
	SchemaURI string `json:"schema_uri" yaml:"schema_uri"`
}

// NewNamespace creates a namespace value.
func NewNamespace(prefix, schemaURI string) Namespace {
	return Namespace{Prefix: prefix, SchemaURI: schemaURI}
}

// String renders the namespace in head prefix attribute form: "og: http://ogp.me/ns#".
func (n Namespace) String() string {
	return n.Prefix + ": " + n.SchemaURI
}

// IsZero reports whether the namespace has no prefix.
func (n Namespace) IsZero() bool {
	return n.Prefix == ""
}

// RegistryNamespace is a registered namespace together with the local element
// names a document must carry when specification validation is requested.
type RegistryNamespace struct {
	Namespace
	Required []string
}

// RequiredElements returns a copy of the required local names in declaration order.
func (n RegistryNamespace) RequiredElements() []string {
	if len(n.Required) == 0 {
		return nil
	}
	out := make([]string, len(n.Required))
	copy(out, n.Required)
	return out
}
