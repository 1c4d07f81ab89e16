// Package api is the single HTTP client for the clinic backend. It attaches
// the session's bearer token to every request, normalizes non-2xx responses
// into *Error values, and handles 401 globally by clearing the session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinica/clinica/internal/platform/session"
)

// Error is a non-2xx API response. Message carries the backend's {message}
// body when one was present, otherwise the HTTP status text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Message extracts the best human-readable message from err: the API-provided
// message when err is an *Error, then the transport error text, then fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// Client issues JSON requests against one base origin.
type Client struct {
	base    *url.URL
	http    *http.Client
	session *session.Store
	log     zerolog.Logger

	// onUnauthorized fires after a 401 has cleared a live session; it is the
	// redirect-to-login analog. It never fires when the session was already
	// empty, which keeps repeated 401s from looping.
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the request logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithUnauthorizedHandler registers the callback invoked when a 401 ends a
// live session.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New creates a Client for the given base origin.
func New(baseURL string, sess *session.Store, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	c := &Client{
		base:    base,
		http:    &http.Client{Timeout: 30 * time.Second},
		session: sess,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get issues a GET and decodes the response body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPut, path, in, out)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	u := c.base.JoinPath(path)

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	rid := uuid.NewString()
	req.Header.Set("X-Request-ID", rid)

	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().
			Str("request_id", rid).
			Str("method", method).
			Str("path", path).
			Dur("latency", time.Since(start)).
			Err(err).
			Msg("request")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.log.Info().
		Str("request_id", rid).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("request")

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return &Error{Status: resp.StatusCode, Message: readMessage(resp)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Status: resp.StatusCode, Message: readMessage(resp)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// handleUnauthorized clears the session and notifies once. Only the 401 that
// actually ends a live session fires the callback; later 401s find the store
// already empty and stay quiet.
func (c *Client) handleUnauthorized() {
	had, err := c.session.Clear()
	if err != nil {
		c.log.Error().Err(err).Msg("clear session after 401")
	}
	if had && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
}

// readMessage pulls the {message} field out of an error body, falling back to
// the HTTP status text.
func readMessage(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err == nil && len(data) > 0 {
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil && strings.TrimSpace(payload.Message) != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}
