package integrations

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/httputil"
	"github.com/matzehuels/pyregraph/pkg/observability"
)

// Options configures a [Client]. Zero fields take the package defaults.
type Options struct {
	// Timeout bounds each HTTP request (DefaultTimeout).
	Timeout time.Duration

	// RateLimit caps outgoing requests per second (DefaultRateLimit).
	// A negative value disables limiting.
	RateLimit float64

	// Attempts and Backoff control retries of transient failures
	// (httputil.DefaultAttempts, httputil.DefaultBackoff).
	Attempts int
	Backoff  time.Duration

	// Headers are applied to all requests. User-Agent defaults to
	// DefaultUserAgent.
	Headers map[string]string

	// HTTPClient overrides the underlying client; Timeout is ignored then.
	HTTPClient *http.Client
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.RateLimit == 0 {
		o.RateLimit = DefaultRateLimit
	}
	if o.Attempts <= 0 {
		o.Attempts = httputil.DefaultAttempts
	}
	if o.Backoff <= 0 {
		o.Backoff = httputil.DefaultBackoff
	}
	if o.HTTPClient == nil {
		o.HTTPClient = NewHTTPClient(o.Timeout)
	}
	headers := map[string]string{"User-Agent": DefaultUserAgent, "Accept": "application/json"}
	for k, v := range o.Headers {
		headers[k] = v
	}
	o.Headers = headers
	return o
}

// Client provides shared HTTP functionality for lookup API clients.
// It handles rate limiting, retry logic, status mapping, and common request
// headers.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	http     *http.Client
	limiter  *rate.Limiter
	headers  map[string]string
	attempts int
	backoff  time.Duration
}

// NewClient creates a Client from opts.
func NewClient(opts Options) *Client {
	opts = opts.withDefaults()

	limit := rate.Limit(opts.RateLimit)
	if opts.RateLimit < 0 {
		limit = rate.Inf
	}
	return &Client{
		http:     opts.HTTPClient,
		limiter:  rate.NewLimiter(limit, 1),
		headers:  opts.Headers,
		attempts: opts.Attempts,
		backoff:  opts.Backoff,
	}
}

// Get performs an HTTP GET request and JSON-decodes the response into v.
// Transient failures are retried with exponential backoff; every attempt
// waits for the rate limiter first.
//
// Errors carry a code from pkg/errors:
//   - [errors.ErrCodeNotFound] for 404
//   - [errors.ErrCodeRateLimited] for 429 after retries are exhausted
//   - [errors.ErrCodeNetwork] for transport failures and other statuses
//   - [errors.ErrCodeDataIntegrity] for an undecodable body
func (c *Client) Get(ctx context.Context, rawURL string, v any) error {
	return httputil.Retry(ctx, c.attempts, c.backoff, func() error {
		return c.get(ctx, rawURL, v)
	})
}

func (c *Client) get(ctx context.Context, rawURL string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, req.Method, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "request to %s failed", host)}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeDataIntegrity, err, "decode response from %s", host)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "resource not found")
	case code == http.StatusTooManyRequests:
		secs := parseRetryAfter(resp.Header.Get("Retry-After"))
		return &httputil.RetryableError{
			Err:   errors.Wrap(errors.ErrCodeRateLimited, &errors.RateLimitedError{RetryAfter: secs}, "rate limited"),
			After: time.Duration(secs) * time.Second,
		}
	case code >= 500:
		return &httputil.RetryableError{Err: errors.New(errors.ErrCodeNetwork, "status %d", code)}
	default:
		return errors.New(errors.ErrCodeNetwork, "status %d", code)
	}
}
