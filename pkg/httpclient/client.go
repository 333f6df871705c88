package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Config defines the setup for the HTTP client.
type Config struct {
	Timeout time.Duration
	// Retries is the number of additional attempts after a failed request.
	Retries int
	// Backoff is the base delay between attempts; it grows linearly per attempt.
	Backoff time.Duration
}

// Client wraps a standard http.Client with a bounded timeout and a small
// fixed-retry policy for transient upstream failures.
type Client struct {
	*http.Client
	retries int
	backoff time.Duration
}

// New creates a new HTTP client based on the provided configuration.
func New(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Backoff == 0 {
		cfg.Backoff = 500 * time.Millisecond
	}

	return &Client{
		Client:  &http.Client{Timeout: cfg.Timeout},
		retries: cfg.Retries,
		backoff: cfg.Backoff,
	}
}

// Do executes an HTTP request under the provided context, retrying network
// errors and retryable status codes (429, 5xx). The request body must be nil
// or replayable; callers here only issue GETs.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if ctx == nil {
		return nil, errors.New("httpclient: context cannot be nil")
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * c.backoff):
			}
		}

		resp, err := c.Client.Do(req.Clone(ctx))
		if err != nil {
			lastErr = err
			continue
		}
		if !retryable(resp.StatusCode) {
			return resp, nil
		}
		resp.Body.Close()
		lastErr = fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}
	return nil, fmt.Errorf("httpclient: request failed after %d attempts: %w", c.retries+1, lastErr)
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}
