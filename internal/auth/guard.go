// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package auth

import "github.com/reloguito/legisbot-tui/internal/model"

// =============================================================================
// ROUTE GUARD
// =============================================================================

// Decision is the route guard's verdict for a protected screen.
type Decision int

const (
	// DecisionLoading renders the loading placeholder until bootstrap ends.
	DecisionLoading Decision = iota
	// DecisionRedirectLogin sends an anonymous user to the login screen.
	DecisionRedirectLogin
	// DecisionRedirectHome sends a non-admin away from an admin-only screen.
	DecisionRedirectHome
	// DecisionRender allows the protected content.
	DecisionRender
)

// Decide gates a protected screen. It is a pure function of the session
// state, the identity, and the screen's adminOnly flag, and must be
// re-evaluated on every navigation.
func Decide(state State, user *model.User, adminOnly bool) Decision {
	switch state {
	case StateInitializing:
		return DecisionLoading
	case StateAuthenticated:
		if adminOnly && (user == nil || !user.IsAdmin()) {
			return DecisionRedirectHome
		}
		return DecisionRender
	default:
		return DecisionRedirectLogin
	}
}
