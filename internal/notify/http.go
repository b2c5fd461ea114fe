// Package notify delivers due reminder notifications over webhooks.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient posts webhook payloads with bounded retries.
type HTTPClient struct {
	client     *http.Client
	maxRetries int
	retryDelay []time.Duration
}

// NewHTTPClient creates a client with the given timeout and retry budget.
func NewHTTPClient(timeout time.Duration, maxRetries int) *HTTPClient {
	return &HTTPClient{
		client:     &http.Client{Timeout: timeout},
		maxRetries: maxRetries,
		retryDelay: []time.Duration{
			0, // Immediate first attempt
			5 * time.Second,
			30 * time.Second,
		},
	}
}

// SendResult contains the result of a send operation.
type SendResult struct {
	StatusCode int
	Attempts   int
	Error      error
}

// Send posts body to the URL, retrying transient failures.
func (c *HTTPClient) Send(ctx context.Context, url, contentType string, body []byte) *SendResult {
	result := &SendResult{}

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result.Attempts = attempt + 1

		if attempt > 0 {
			delay := c.retryDelay[len(c.retryDelay)-1]
			if attempt < len(c.retryDelay) {
				delay = c.retryDelay[attempt]
			}
			select {
			case <-ctx.Done():
				result.Error = ctx.Err()
				return result
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			result.Error = fmt.Errorf("failed to create request: %w", err)
			return result
		}
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("User-Agent", "recordar/1.0")

		resp, err := c.client.Do(req)
		if err != nil {
			result.Error = fmt.Errorf("request failed: %w", err)
			continue
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		result.StatusCode = resp.StatusCode

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			result.Error = nil
			return result
		}

		result.Error = fmt.Errorf("webhook returned status %d", resp.StatusCode)

		// Client errors do not retry; the payload will not get better.
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return result
		}
	}

	return result
}
