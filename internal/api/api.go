// package api implements the catalog backend client.
//
// Every request reads the current session snapshot at call time and attaches
// the principal's credential as a bearer token when one is present;
// unauthenticated requests go out as-is. A 401 is reported and surfaced,
// never retried or refreshed.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/moviemaster/mvx/internal/session"
	"github.com/moviemaster/mvx/internal/shared"
	"golang.org/x/time/rate"
)

// Client is the catalog API client. Construction is cheap; the session
// context is consulted per call, never captured.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *session.Context
	logger     *log.Logger
	limiter    *rate.Limiter
}

// ClientOpts contains configuration options for creating a Client.
type ClientOpts struct {
	BaseURL    string
	HTTPClient *http.Client
	Session    *session.Context
	Logger     *log.Logger
	RateLimit  float64
}

// NewClient creates a new catalog API client.
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "http://localhost:3000"
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		session:    opts.Session,
		logger:     opts.Logger,
		limiter:    rate.NewLimiter(rate.Limit(opts.RateLimit), 1),
	}
}

// do performs a JSON request against the catalog API, decoding the response
// into result when non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	// Read the session at call time; a client constructed before sign-in
	// must still attach the fresh credential.
	if c.session != nil {
		if snap := c.session.Snapshot(); snap.Identity != nil {
			req.Header.Set("Authorization", "Bearer "+snap.Identity.Credential)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// No retry, no refresh; the caller's error path decides what the
		// user sees.
		c.logger.Warn("catalog rejected credentials", "method", method, "path", path)
		return fmt.Errorf("%w: %s %s", shared.ErrUnauthorized, method, path)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: catalog status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
