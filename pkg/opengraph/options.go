package opengraph

import (
	"time"

	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// Option configures ParseHTML, ParseURL and ParseURLAsync.
type Option func(*parseOptions)

type parseOptions struct {
	validate    bool
	registry    *Registry
	logger      ogmi.Logger
	originalURL string

	fetcher   ogmi.Fetcher
	userAgent string
	referrer  string
	timeout   time.Duration
}

func newParseOptions(opts []Option) parseOptions {
	o := parseOptions{
		registry:  DefaultRegistry(),
		userAgent: ogmi.DefaultUserAgent,
		timeout:   ogmi.DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}
	return o
}

// WithValidation enables required-element checks after parsing.
func WithValidation(enabled bool) Option {
	return func(o *parseOptions) { o.validate = enabled }
}

// WithRegistry parses against reg instead of DefaultRegistry().
func WithRegistry(reg *Registry) Option {
	return func(o *parseOptions) { o.registry = reg }
}

// WithLogger reports dropped meta nodes at verbose level.
func WithLogger(l ogmi.Logger) Option {
	return func(o *parseOptions) { o.logger = l }
}

// WithOriginalURL records the address the document came from.
func WithOriginalURL(rawURL string) Option {
	return func(o *parseOptions) { o.originalURL = rawURL }
}

// WithFetcher replaces the default HTTP fetcher used by ParseURL.
func WithFetcher(f ogmi.Fetcher) Option {
	return func(o *parseOptions) { o.fetcher = f }
}

// WithUserAgent sets the User-Agent header sent by ParseURL.
func WithUserAgent(ua string) Option {
	return func(o *parseOptions) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithReferrer sets the Referer header sent by ParseURL.
func WithReferrer(referrer string) Option {
	return func(o *parseOptions) { o.referrer = referrer }
}

// WithTimeout bounds a single fetch, retries included. Zero leaves the
// fetcher default in place.
func WithTimeout(d time.Duration) Option {
	return func(o *parseOptions) { o.timeout = d }
}
