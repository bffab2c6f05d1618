package ogmi

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess                = 0  // Command completed successfully
	ExitGeneralError           = 1  // Unknown or unclassified error
	ExitUsageError             = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic                  = 3  // Internal panic (unexpected crash)
	ExitConfigError            = 10 // Invalid configuration or parameters
	ExitFetchFailed            = 11 // Document could not be retrieved
	ExitSpecificationViolation = 12 // Required Open Graph element missing
	ExitInvalidGraph           = 13 // Graph could not be constructed from literal values
	ExitStoreFailed            = 14 // Snapshot store unavailable or query failed
)

const (
	// DefaultUserAgent is sent when fetching documents. Some sites (Amazon, for one)
	// only emit Open Graph tags for the Facebook crawler.
	DefaultUserAgent = "facebookexternalhit"

	// DefaultFetchTimeout bounds a single document retrieval.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultMaxRedirects is the number of redirects followed before the
	// last response is returned as-is.
	DefaultMaxRedirects = 10

	// MaxDocumentSize caps the number of bytes read from a response body.
	MaxDocumentSize = 10 * 1024 * 1024

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 100 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 10 * time.Second

	// DefaultRetryMaxAttempts is the default maximum number of retry attempts.
	DefaultRetryMaxAttempts = 3

	// DefaultHistoryLimit is the number of snapshots listed by history queries.
	DefaultHistoryLimit = 20
)
