// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"net/http"
	"time"
)

// =============================================================================
// TOKEN SOURCE
// =============================================================================

// TokenSource supplies the current bearer token for outgoing requests.
// An empty string means unauthenticated; the request is sent without an
// Authorization header.
//
// The token is written only by login, bootstrap, and logout; every request
// reads it here instead of relying on a header mutated onto a shared client.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource with a fixed value, used by one-shot CLI
// commands and tests.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string { return string(s) }

// =============================================================================
// BEARER TRANSPORT
// =============================================================================

// bearerTransport injects the Authorization header per request, reading the
// token from the source at send time.
type bearerTransport struct {
	source TokenSource
	base   http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if tok := t.source.Token(); tok != "" {
		// Per RoundTripper contract the request must not be mutated.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return t.base.RoundTrip(req)
}

// newHTTPClient builds the pooled HTTP client used for every request.
// PERFORMANCE: Connection pooling reduces TCP handshake overhead.
func newHTTPClient(source TokenSource, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &bearerTransport{
			source: source,
			base: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}
