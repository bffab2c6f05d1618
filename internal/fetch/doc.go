// Package fetch retrieves HTML documents over HTTP for the Open Graph parser.
//
// HTTPFetcher implements ogmi.Fetcher. A fetch sends the configured
// User-Agent and Referer, follows up to ogmi.DefaultMaxRedirects redirects,
// retries once on a 301 left unfollowed, decodes gzip and deflate bodies,
// converts the body to UTF-8 using the Content-Type charset or the
// document's own meta declaration, and retries transient failures (5xx,
// 429, 408, connection resets) with exponential backoff.
//
// Non-2xx responses are reported as *StatusError, which matches
// ogmi.ErrFetchFailed under errors.Is.
package fetch
