// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the reusable UI components for the legisbot
// TUI: the loading spinner, the status bar, and the bar chart renderer used
// by the admin statistics screen.
package components
