// Package retry runs operations with exponential backoff, retrying only the
// failures an ErrorClassifier reports as transient.
//
// Two classifiers are provided: HTTPErrorClassifier for document fetches
// (5xx, 429, 408 and network failures) and PostgreSQLErrorClassifier for the
// snapshot store connection (SQLSTATE classes 08, 53, 57 and friends).
//
//	executor := retry.NewExecutor(
//	    retry.NewHTTPErrorClassifier(),
//	    retry.NewBackoffFromConfig(ogmi.DefaultRetryConfig()),
//	)
//	body, err := retry.Do(ctx, executor, func(ctx context.Context) (string, error) {
//	    return get(ctx, url)
//	})
//
// Executors are safe for concurrent use; WithOnRetry returns a copy.
package retry
