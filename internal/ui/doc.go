// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui implements the Bubble Tea interface of the legisbot client.
//
// The App model owns screen routing: every navigation goes through the route
// guard in internal/auth, so protected screens are unreachable while the
// session is anonymous and admin screens are unreachable for members. Each
// screen (login, register, onboarding, chat, history, stats) is its own
// sub-model updated only while active.
package ui
