// Package httputil provides HTTP helpers shared by the lookup clients.
//
// # Retry
//
// [Retry] wraps a request with automatic retry for transient failures.
// Only errors wrapped in [RetryableError] are retried:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses (honoring Retry-After through RetryableError.After)
//
// The delay doubles after each failed attempt:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return client.fetch(ctx, url)
//	})
//
// Default settings are 3 attempts with a 1 second initial backoff.
package httputil
