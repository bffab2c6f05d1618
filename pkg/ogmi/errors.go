package ogmi

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	graph, err := opengraph.ParseHTML(html, opengraph.WithValidation(true))
//	if errors.Is(err, ogmi.ErrSpecificationViolation) {
//	    // Document is missing a required element
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSpecificationViolation indicates a required Open Graph element is missing.
	ErrSpecificationViolation = errors.New("open graph specification violation")

	// ErrFetchFailed indicates the document could not be retrieved.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrInvalidGraph indicates a graph could not be built from literal values.
	ErrInvalidGraph = errors.New("invalid graph")

	// ErrUnknownNamespace indicates a prefix is not present in the namespace registry.
	ErrUnknownNamespace = errors.New("unknown namespace")

	// ErrStoreFailed indicates a snapshot store operation failed.
	ErrStoreFailed = errors.New("store operation failed")

	// ErrSnapshotNotFound indicates no snapshot exists for the requested URL.
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// usageErrorPatterns are cobra/pflag messages produced by command line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrSpecificationViolation):
		return ExitSpecificationViolation
	case errors.Is(err, ErrFetchFailed):
		return ExitFetchFailed
	case errors.Is(err, ErrInvalidGraph), errors.Is(err, ErrUnknownNamespace):
		return ExitInvalidGraph
	case errors.Is(err, ErrStoreFailed), errors.Is(err, ErrSnapshotNotFound):
		return ExitStoreFailed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
