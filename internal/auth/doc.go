// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth owns the "who is logged in" state of the legisbot client.
//
// The Store is the single source of truth for the session: it bootstraps from
// the persisted bearer token, performs login/register/logout, and exposes the
// session as a tagged state (Initializing, Anonymous, Authenticated) instead
// of a nullable user plus loading flag. The route guard consumes that state
// to decide what each screen may render.
package auth
