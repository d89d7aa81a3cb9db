// Package store implements the remote REST object store client and the
// Post/User repositories built on top of it. The store exposes /users and
// /posts collections with JSON bodies and query-parameter field filtering;
// it offers no transactions across resources.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sylee999/minifeed/internal/api/metrics"
	"github.com/sylee999/minifeed/internal/core/domain"
)

const requestTimeout = 10 * time.Second

// Client issues JSON requests against the configured store base URL. Every
// non-success status maps to a tagged API error carrying the status and
// endpoint; callers decide which statuses are semantic (404 on a single
// entity means "absent", not failure).
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient validates the base URL and returns a ready client. An empty base
// URL is a configuration error: it must fail startup, not the first request.
func NewClient(baseURL string, log zerolog.Logger) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, domain.NewConfigurationError("store: base URL is required")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        log,
	}, nil
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a full-record replace with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Ping probes the store with a minimal read. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	var probe []json.RawMessage
	err := c.Get(ctx, "/posts?page=1&limit=1", &probe)
	if err != nil && domain.APIStatus(err) == http.StatusNotFound {
		return nil
	}
	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("store: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("store: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.StoreRequestDuration.WithLabelValues(method, resourceOf(path)).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreRequestsTotal.WithLabelValues(method, resourceOf(path), "error").Inc()
		return domain.NewAPIError(fmt.Sprintf("store: %s %s: %v", method, path, err), 0, endpoint)
	}
	defer resp.Body.Close()

	metrics.StoreRequestsTotal.WithLabelValues(method, resourceOf(path), strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().
			Str("method", method).
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("store request failed")
		return domain.NewAPIError(
			fmt.Sprintf("store: %s %s returned %d", method, path, resp.StatusCode),
			resp.StatusCode,
			endpoint,
		)
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("store: read body: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("store: decode %s %s: %w", method, path, err)
	}
	return nil
}

// resourceOf extracts the top-level collection from a request path for
// metric labels ("/users/42" → "users").
func resourceOf(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}
	if trimmed == "" {
		return "unknown"
	}
	return trimmed
}
