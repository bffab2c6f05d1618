package opengraph

import (
	"fmt"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// SpecificationError reports the first required element missing from a
// document parsed with validation enabled.
type SpecificationError struct {
	Namespace Namespace
	Element   string
}

func (e *SpecificationError) Error() string {
	return fmt.Sprintf("missing element: %s (namespace %s)", e.Element, e.Namespace)
}

// Unwrap allows errors.Is(err, ogmi.ErrSpecificationViolation).
func (e *SpecificationError) Unwrap() error {
	return ogmi.ErrSpecificationViolation
}

// Key returns the qualified key of the missing element.
func (e *SpecificationError) Key() string {
	return e.Namespace.Prefix + ":" + e.Element
}
