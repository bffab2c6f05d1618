package ogmi

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// FetchRequest describes a single document retrieval.
type FetchRequest struct {
	// URL is the absolute http(s) address of the document
	URL string

	// Referrer is sent as the Referer header when non-empty
	Referrer string

	// UserAgent overrides DefaultUserAgent when non-empty
	UserAgent string

	// Timeout bounds the whole retrieval including retries (0 = DefaultFetchTimeout)
	Timeout time.Duration
}

// Validate checks that the request targets an absolute http(s) URL.
func (r FetchRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.URL) == "" {
		errs = append(errs, fmt.Errorf("URL is required: %w", ErrInvalidConfig))
	} else if u, err := url.Parse(r.URL); err != nil {
		errs = append(errs, fmt.Errorf("URL %q is malformed: %v: %w", r.URL, err, ErrInvalidConfig))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Errorf("URL %q must use http or https: %w", r.URL, ErrInvalidConfig))
	} else if u.Host == "" {
		errs = append(errs, fmt.Errorf("URL %q has no host: %w", r.URL, ErrInvalidConfig))
	}

	if r.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// FetchConfig contains all parameters needed for a fetch-and-parse operation.
type FetchConfig struct {
	FetchRequest

	// ValidateSpecification enables the required-element check after parsing
	ValidateSpecification bool

	// Retry controls transient failure handling
	Retry RetryConfig

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the FetchConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *FetchConfig) Validate() error {
	return errors.Join(c.FetchRequest.Validate(), c.Retry.Validate())
}

// RetryConfig holds exponential backoff settings.
type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryConfig returns the retry settings used when none are configured.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  DefaultRetryMaxAttempts,
		InitialDelay: DefaultRetryInitialDelay,
		MaxDelay:     DefaultRetryMaxDelay,
	}
}

// Validate rejects negative delays and attempt counts below -1.
func (c RetryConfig) Validate() error {
	var errs []error

	if c.MaxAttempts < -1 {
		errs = append(errs, fmt.Errorf("retry max attempts must be >= -1, got %d: %w", c.MaxAttempts, ErrInvalidConfig))
	}
	if c.InitialDelay < 0 {
		errs = append(errs, fmt.Errorf("retry initial delay cannot be negative: %w", ErrInvalidConfig))
	}
	if c.MaxDelay < 0 {
		errs = append(errs, fmt.Errorf("retry max delay cannot be negative: %w", ErrInvalidConfig))
	}
	if c.MaxDelay > 0 && c.InitialDelay > c.MaxDelay {
		errs = append(errs, fmt.Errorf("retry initial delay %s exceeds max delay %s: %w", c.InitialDelay, c.MaxDelay, ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// StoreConfig contains the parameters for the snapshot store.
type StoreConfig struct {
	// DatabaseURL is the PostgreSQL connection string (URI or key=value format)
	DatabaseURL string

	// Retry controls connection retry on transient PostgreSQL errors
	Retry RetryConfig
}

// Validate checks if the StoreConfig has all required fields and valid values.
func (c *StoreConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DatabaseURL) == "" {
		errs = append(errs, fmt.Errorf("DatabaseURL is required: %w", ErrInvalidConfig))
	}
	errs = append(errs, c.Retry.Validate())

	return errors.Join(errs...)
}
