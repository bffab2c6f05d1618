package opengraph

import (
	"context"

	"github.com/vvka-141/ogmi/internal/fetch"
	"github.com/vvka-141/ogmi/pkg/ogmi"
)

// Result is delivered by ParseURLAsync.
type Result struct {
	Graph *OpenGraph
	Err   error
}

// ParseURL fetches rawURL and parses the returned document. Fetch errors,
// including context cancellation, are returned unchanged.
func ParseURL(ctx context.Context, rawURL string, opts ...Option) (*OpenGraph, error) {
	o := newParseOptions(opts)

	req := ogmi.FetchRequest{
		URL:       rawURL,
		Referrer:  o.referrer,
		UserAgent: o.userAgent,
		Timeout:   o.timeout,
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	fetcher := o.fetcher
	if fetcher == nil {
		fetcher = fetch.New(fetch.WithLogger(o.logger))
	}

	content, err := fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	if o.originalURL == "" {
		o.originalURL = rawURL
	}
	return parseDocument(content, o)
}

// ParseURLAsync runs ParseURL on its own goroutine. The returned channel
// receives exactly one Result and is then closed.
func ParseURLAsync(ctx context.Context, rawURL string, opts ...Option) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		g, err := ParseURL(ctx, rawURL, opts...)
		out <- Result{Graph: g, Err: err}
	}()
	return out
}
