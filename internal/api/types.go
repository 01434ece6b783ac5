// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import "github.com/reloguito/legisbot-tui/internal/model"

// =============================================================================
// AUTH PAYLOADS
// =============================================================================

// tokenResponse is the body of POST /auth/token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// =============================================================================
// DOCUMENT CONTEXTS
// =============================================================================

// DocumentContext is a named grouping of indexed documents that queries can
// be scoped to.
type DocumentContext struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// contextsResponse is the body of GET /documents/contexts.
type contextsResponse struct {
	Contexts []DocumentContext `json:"contexts"`
}

// =============================================================================
// CHAT QUERY
// =============================================================================

// queryRequest is the body of POST /chat/query.
type queryRequest struct {
	Query     string `json:"query"`
	HistoryID *int   `json:"history_id"`
}

// QueryResult is the body of a successful POST /chat/query.
type QueryResult struct {
	Answer    string         `json:"answer"`
	Sources   []model.Source `json:"sources,omitempty"`
	HistoryID *int           `json:"history_id,omitempty"`
}
