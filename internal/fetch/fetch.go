// Package fetch retrieves the raw listing markup over HTTP with bounded
// retries. Transport errors and 5xx responses are retried with exponential
// backoff; 4xx responses fail immediately.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// DefaultUserAgent mirrors a desktop browser; the listing site serves
	// a stripped page to unknown agents.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	DefaultTimeout        = 30 * time.Second
	DefaultMaxRetries     = 3
	DefaultBackoffInitial = 500 * time.Millisecond
	DefaultBackoffMax     = 5 * time.Second
)

// NetworkError reports a fetch that failed after all retries.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Options configures a Client. Zero durations and an empty UserAgent fall
// back to the defaults above; MaxRetries 0 disables retries, negative values
// fall back to DefaultMaxRetries.
type Options struct {
	Timeout        time.Duration
	UserAgent      string
	MaxRetries     int
	BackoffInitial time.Duration
	BackoffMax     time.Duration
}

// Client issues single-page GET requests with retry.
type Client struct {
	http           *http.Client
	userAgent      string
	maxRetries     uint64
	backoffInitial time.Duration
	backoffMax     time.Duration
}

// New creates a Client from opts, applying defaults for unset values.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.BackoffInitial <= 0 {
		opts.BackoffInitial = DefaultBackoffInitial
	}
	if opts.BackoffMax <= 0 {
		opts.BackoffMax = DefaultBackoffMax
	}

	return &Client{
		http:           &http.Client{Timeout: opts.Timeout},
		userAgent:      opts.UserAgent,
		maxRetries:     uint64(opts.MaxRetries),
		backoffInitial: opts.BackoffInitial,
		backoffMax:     opts.BackoffMax,
	}
}

// Fetch retrieves rawURL and returns the response body as a string.
// Failures after the retry budget surface as a *NetworkError.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	var body string
	op := func() error {
		b, err := c.fetchOnce(ctx, rawURL)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.backoffInitial
	exp.MaxInterval = c.backoffMax

	bo := backoff.WithContext(backoff.WithMaxRetries(exp, c.maxRetries), ctx)
	if err := backoff.Retry(op, bo); err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}

	return body, nil
}

func (c *Client) fetchOnce(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// Client errors won't heal on retry.
			return "", backoff.Permanent(err)
		}
		return "", err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	return string(data), nil
}
