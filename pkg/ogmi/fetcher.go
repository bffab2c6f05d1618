package ogmi

import "context"

// Fetcher retrieves a document and returns its decoded text.
// Implementations own redirect handling, character-set decoding and
// transport-level retries; errors are returned to the caller unchanged.
type Fetcher interface {
	Fetch(ctx context.Context, req FetchRequest) (string, error)
}
