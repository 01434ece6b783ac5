// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines all Bubble Tea message types used by the legisbot TUI.
// All carry the complete result of an asynchronous operation; screens never
// block, they receive one of these when the network round-trip resolves.

package ui

import (
	"github.com/reloguito/legisbot-tui/internal/api"
	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/model"
)

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// bootstrapDoneMsg reports that the one-time session bootstrap finished.
type bootstrapDoneMsg struct {
	State auth.State
}

// loginResultMsg reports the outcome of a login submission.
type loginResultMsg struct {
	User *model.User
	Err  error
}

// registerResultMsg reports the outcome of a registration (including the
// chained auto-login).
type registerResultMsg struct {
	User *model.User
	Err  error
}

// registerRedirectMsg fires after the post-registration notice delay.
type registerRedirectMsg struct{}

// onboardingResultMsg reports the outcome of the profile submission.
type onboardingResultMsg struct {
	User *model.User
	Err  error
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// navigateMsg asks the app to switch screens. The route guard decides
// whether the switch actually happens.
type navigateMsg struct {
	Screen Screen
}

// =============================================================================
// CHAT MESSAGES
// =============================================================================

// contextsMsg delivers the document context list for the chat screen.
type contextsMsg struct {
	Contexts []api.DocumentContext
	Err      error
}

// queryResultMsg delivers the resolution of a chat submission. PendingID
// addresses the placeholder turn; a stale ID is dropped by the transcript.
type queryResultMsg struct {
	PendingID string
	Result    *api.QueryResult
	Err       error
}

// =============================================================================
// HISTORY / STATS MESSAGES
// =============================================================================

// historyMsg delivers the stored chat sessions.
type historyMsg struct {
	Sessions []model.ChatSession
	Err      error
}

// statKind identifies which chart a statsMsg belongs to.
type statKind int

const (
	statDemographics statKind = iota
	statUsage
	statTopQueries
)

// statsMsg delivers one chart's series. Each chart fetches independently and
// fails independently.
type statsMsg struct {
	Kind   statKind
	Series model.Series
	Err    error
}
