// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across the legisbot client:
// atomic file writes for the credential store and rune-aware string
// truncation for list previews and chart labels.
package util
