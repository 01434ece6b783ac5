// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the LegisBot service.
//
// It covers the full surface consumed by the terminal client: the token and
// identity endpoints, registration and onboarding, document contexts, chat
// queries, stored history, and the admin statistics feeds.
//
// The bearer token is not mutated onto a shared client; it is re-read from a
// TokenSource on every outgoing request by a RoundTripper, so login, logout,
// and bootstrap never race with in-flight calls.
package api
