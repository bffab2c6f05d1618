package fetch

import (
	"fmt"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL    string
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d fetching %s", e.Code, e.URL)
}

// StatusCode returns the HTTP status code.
func (e *StatusError) StatusCode() int {
	return e.Code
}

// Unwrap allows errors.Is(err, ogmi.ErrFetchFailed).
func (e *StatusError) Unwrap() error {
	return ogmi.ErrFetchFailed
}
