package fetch

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vvka-141/ogmi/internal/logging"
	"github.com/vvka-141/ogmi/internal/retry"
	"github.com/vvka-141/ogmi/pkg/ogmi"
)

const acceptHeader = "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8"

// HTTPFetcher retrieves documents over HTTP. It is safe for concurrent use.
type HTTPFetcher struct {
	client   *http.Client
	retry    ogmi.RetryConfig
	logger   ogmi.Logger
	maxBytes int64
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithClient replaces the HTTP client. The client's transport should not
// decompress responses itself.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithRetry sets the transient failure retry policy.
func WithRetry(cfg ogmi.RetryConfig) Option {
	return func(f *HTTPFetcher) { f.retry = cfg }
}

// WithLogger reports retries and redirects at verbose level.
func WithLogger(l ogmi.Logger) Option {
	return func(f *HTTPFetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithMaxDocumentSize caps the decoded body size.
func WithMaxDocumentSize(n int64) Option {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// New creates an HTTPFetcher with ogmi's defaults.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:   newClient(),
		retry:    ogmi.DefaultRetryConfig(),
		logger:   logging.NewNullLogger(),
		maxBytes: ogmi.MaxDocumentSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func newClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableCompression = true
	return &http.Client{
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= ogmi.DefaultMaxRedirects {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// Fetch retrieves req.URL and returns the body as UTF-8 text.
func (f *HTTPFetcher) Fetch(ctx context.Context, req ogmi.FetchRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	timeout := req.Timeout
	if timeout == 0 {
		timeout = ogmi.DefaultFetchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	executor := retry.NewExecutor(
		retry.NewHTTPErrorClassifier(),
		retry.NewBackoffFromConfig(f.retry),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		f.logger.Verbose("fetch %s failed (%v), retry %d in %s", req.URL, err, attempt+1, delay)
	})

	return retry.Do(ctx, executor, func(ctx context.Context) (string, error) {
		return f.fetchOnce(ctx, req)
	})
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context, req ogmi.FetchRequest) (string, error) {
	resp, err := f.get(ctx, req.URL, req)
	if err != nil {
		return "", err
	}

	// A 301 is only returned here once the redirect budget is spent; try
	// its target once more before giving up.
	if resp.StatusCode == http.StatusMovedPermanently {
		location, locErr := resp.Location()
		resp.Body.Close()
		if locErr != nil {
			return "", &StatusError{URL: req.URL, Code: resp.StatusCode, Status: resp.Status}
		}
		f.logger.Verbose("fetch %s: moved permanently to %s", req.URL, location)
		resp, err = f.get(ctx, location.String(), req)
		if err != nil {
			return "", err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: resp.Request.URL.String(), Code: resp.StatusCode, Status: resp.Status}
	}

	body, closer, err := decompress(resp.Body, resp.Header.Get("Content-Encoding"))
	if err != nil {
		return "", err
	}
	defer closer.Close()

	return readDocument(body, resp.Header.Get("Content-Type"), f.maxBytes)
}

func (f *HTTPFetcher) get(ctx context.Context, target string, req ogmi.FetchRequest) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := req.UserAgent
	if userAgent == "" {
		userAgent = ogmi.DefaultUserAgent
	}
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.Header.Set("Accept", acceptHeader)
	httpReq.Header.Set("Accept-Encoding", "gzip, deflate")
	if req.Referrer != "" {
		httpReq.Header.Set("Referer", req.Referrer)
	}

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w: %w", err, ogmi.ErrFetchFailed)
	}
	return resp, nil
}
