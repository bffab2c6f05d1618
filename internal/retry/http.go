package retry

import (
	"errors"
	"net/http"
)

// StatusCoder is implemented by errors that carry an HTTP response status.
type StatusCoder interface {
	StatusCode() int
}

// HTTPErrorClassifier classifies document fetch failures. Server errors,
// 429 and 408 responses and transient network failures are retried; every
// other status (404, 403, ...) is final.
type HTTPErrorClassifier struct{}

// NewHTTPErrorClassifier creates an HTTP error classifier.
func NewHTTPErrorClassifier() *HTTPErrorClassifier {
	return &HTTPErrorClassifier{}
}

// IsTransient reports whether the fetch should be attempted again.
func (c *HTTPErrorClassifier) IsTransient(err error) bool {
	if err == nil || isContextError(err) {
		return false
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		return isTransientStatus(sc.StatusCode())
	}

	return isTransientNetworkError(err)
}

func isTransientStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
