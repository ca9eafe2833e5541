// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jeranaias/docdeck/internal/model"
)

// Configuration constants for the gateway client.
const (
	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 30 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion from a
	// misbehaving backend.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB limit
)

// signInPath is exempt from the 401 interceptor: a failed code exchange
// must not trigger another login redirect (the web client's "already on the
// callback page" check).
const signInPath = "/account/sign_in/"

// =============================================================================
// GATEWAY CLIENT
// =============================================================================

// Client is the thin HTTP wrapper over the CMS REST API. It attaches the
// session cookie automatically, unwraps the {message, trace, data}
// envelope, and funnels the two cross-cutting response classes (401, 403)
// through hooks so no per-call code handles them.
//
// A failed request is surfaced exactly once; the client never retries.
type Client struct {
	baseURL *url.URL
	http    *http.Client

	// OnAuthRequired runs once per 401 before ErrUnauthorized is returned.
	// The TUI uses it to switch to the login surface; the CLI prints the
	// login URL.
	OnAuthRequired func()

	// OnForbidden runs once per 403 before ErrForbidden is returned.
	OnForbidden func()
}

// New creates a gateway client for the given backend base URL. The cookie
// jar persists under the docdeck config directory so the SSO session
// survives restarts.
func New(backendURL string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(backendURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid backend URL %q", backendURL)
	}

	jar, err := newPersistentJar(base)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
			Jar:     jar,
			// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// =============================================================================
// CORE SEND
// =============================================================================

// Send issues one request against the backend and returns the decoded
// envelope. body (when non-nil) is JSON-encoded; params (when non-nil) are
// appended to the query string.
func (c *Client) Send(ctx context.Context, method, path string, body any, params url.Values) (*model.Envelope, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if params != nil {
		u.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	env := &model.Envelope{}
	if len(data) > 0 {
		// A non-JSON body (proxy error page) is tolerated; the envelope
		// stays empty and the status code decides the outcome.
		_ = json.Unmarshal(data, env)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.saveCookies()
		return env, nil
	}

	return nil, c.classify(resp.StatusCode, path, env)
}

// classify maps a non-2xx status to the error taxonomy, firing the
// cross-cutting hooks for the auth classes.
func (c *Client) classify(status int, path string, env *model.Envelope) error {
	switch status {
	case http.StatusUnauthorized:
		if path != signInPath && c.OnAuthRequired != nil {
			c.OnAuthRequired()
		}
		return ErrUnauthorized
	case http.StatusForbidden:
		if c.OnForbidden != nil {
			c.OnForbidden()
		}
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{Code: status, Message: env.Message, Trace: env.Trace}
	}
}

// unwrapResults decodes payloads that arrive either as a bare JSON array
// or wrapped in a paginated {results: [...]} object. The backend is
// inconsistent between list endpoints; callers should not have to care.
func unwrapResults[T any](env *model.Envelope) ([]T, int, error) {
	if len(env.Data) == 0 {
		return nil, 0, nil
	}

	var bare []T
	if err := json.Unmarshal(env.Data, &bare); err == nil {
		return bare, len(bare), nil
	}

	var wrapped struct {
		Total   int `json:"total"`
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(env.Data, &wrapped); err != nil {
		return nil, 0, fmt.Errorf("failed to decode list payload: %w", err)
	}
	if wrapped.Total == 0 {
		wrapped.Total = len(wrapped.Results)
	}
	return wrapped.Results, wrapped.Total, nil
}
