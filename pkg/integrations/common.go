package integrations

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults applied by [Options.withDefaults].
const (
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 10.0 // requests per second
	DefaultUserAgent = "pyregraph/1.0 (https://github.com/matzehuels/pyregraph)"
)

// NewHTTPClient creates an HTTP client with the given request timeout.
// A non-positive timeout selects DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }

// parseRetryAfter reads a Retry-After header given in seconds.
// HTTP-date values and garbage yield zero.
func parseRetryAfter(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
