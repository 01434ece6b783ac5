// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// Sentinel errors for callers that only care about the failure class.
var (
	// ErrUnauthorized marks an invalid or expired bearer token. The session
	// store clears the persisted credential when it sees this.
	ErrUnauthorized = errors.New("authentication failed")

	// ErrForbidden marks a valid session lacking the required role.
	ErrForbidden = errors.New("access denied")
)

// Error is a non-success response from the LegisBot service. Message carries
// the server-provided text when one was present, so forms can surface it
// inline.
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// Unwrap maps auth-related statuses onto the sentinels, so errors.Is works
// while the server-provided message stays reachable via errors.As.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	default:
		return nil
	}
}

// ServerMessage extracts the server-provided message from an error, or
// returns the fallback when the error carries none. Forms use this to show
// validation failures inline with a generic fallback string.
func ServerMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsAuthError reports whether the error means the current credential was
// rejected.
func IsAuthError(err error) bool {
	if errors.Is(err, ErrUnauthorized) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// =============================================================================
// RESPONSE DECODING
// =============================================================================

// errorBody matches the error payloads the service emits: FastAPI uses
// "detail", a few handlers use "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// decodeError converts a non-success response into a typed error.
func decodeError(statusCode int, body []byte) error {
	var eb errorBody
	msg := ""
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Detail != "" {
			msg = eb.Detail
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}

	return &Error{Status: statusCode, Message: msg}
}
