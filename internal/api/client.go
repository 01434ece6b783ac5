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

	"go.uber.org/zap"

	"github.com/reloguito/legisbot-tui/internal/model"
)

// Configuration constants for the LegisBot API.
const (
	// DefaultBaseURL points at a local development server.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout is the default timeout for API requests.
	DefaultTimeout = 60 * time.Second

	// MaxResponseSize is the maximum allowed response body size.
	// SECURITY: Response size limit prevents memory exhaustion.
	MaxResponseSize = 10 * 1024 * 1024 // 10MB
)

// =============================================================================
// CLIENT
// =============================================================================

// Client talks to the LegisBot service. Failures are never retried here:
// every operation is one shot, and the caller decides whether the failure is
// surfaced inline, shown as a transcript turn, or silently degraded.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client reading its bearer token from source.
func NewClient(baseURL string, source TokenSource, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: newHTTPClient(source, DefaultTimeout),
		logger:     logger,
	}
}

// WithTimeout sets the request timeout. Returns the client for chaining.
func (c *Client) WithTimeout(timeout time.Duration) *Client {
	c.httpClient.Timeout = timeout
	return c
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// =============================================================================
// AUTH OPERATIONS
// =============================================================================

// Token obtains a bearer token for the given credentials.
// The token endpoint takes a form-encoded body, not JSON.
func (c *Client) Token(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.send(req)
	if err != nil {
		return "", err
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}
	return tr.AccessToken, nil
}

// Me fetches the identity behind the current bearer token.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.getJSON(ctx, "/auth/users/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. It does not log the account in; the
// session store chains a login after a successful registration.
func (c *Client) Register(ctx context.Context, email, password string) error {
	return c.postJSON(ctx, "/auth/register", RegisterRequest{Email: email, Password: password}, nil)
}

// CompleteOnboarding submits the one-time profile and returns the updated
// identity.
func (c *Client) CompleteOnboarding(ctx context.Context, profile model.OnboardingProfile) (*model.User, error) {
	var user model.User
	if err := c.postJSON(ctx, "/auth/onboarding", profile, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// =============================================================================
// DOCUMENT / CHAT OPERATIONS
// =============================================================================

// Contexts lists the document contexts available for querying.
func (c *Client) Contexts(ctx context.Context) ([]DocumentContext, error) {
	var cr contextsResponse
	if err := c.getJSON(ctx, "/documents/contexts", &cr); err != nil {
		return nil, err
	}
	return cr.Contexts, nil
}

// Query submits a natural-language question against the indexed documents.
// historyID is nil for the first question of a session; the server allocates
// one and returns it.
func (c *Client) Query(ctx context.Context, query string, historyID *int) (*QueryResult, error) {
	var result QueryResult
	if err := c.postJSON(ctx, "/chat/query", queryRequest{Query: query, HistoryID: historyID}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// History fetches all stored chat sessions for the current user.
func (c *Client) History(ctx context.Context) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	if err := c.getJSON(ctx, "/chat/history", &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// =============================================================================
// ADMIN STATISTICS
// =============================================================================

// Demographics fetches the per-group user counts. Admin only.
func (c *Client) Demographics(ctx context.Context) ([]model.GroupCount, error) {
	var rows []model.GroupCount
	if err := c.getJSON(ctx, "/admin/stats/demographics", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Usage fetches the per-day query counts. Admin only.
func (c *Client) Usage(ctx context.Context) ([]model.DateCount, error) {
	var rows []model.DateCount
	if err := c.getJSON(ctx, "/admin/stats/usage", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TopQueries fetches the most frequent queries. Admin only.
func (c *Client) TopQueries(ctx context.Context) ([]model.GroupCount, error) {
	var rows []model.GroupCount
	if err := c.getJSON(ctx, "/admin/stats/top-queries", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// getJSON performs a GET and decodes the response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// postJSON performs a POST with a JSON body and decodes the response into out
// when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.send(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// send executes the request and returns the body of a success response.
func (c *Client) send(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api response",
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	// SECURITY: Read response with size limit to prevent memory exhaustion.
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, decodeError(resp.StatusCode, body)
	}
	return body, nil
}
