// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-interactive surface of the legisbot client:
// one-shot questions, a readline-style chat loop, credential management, and
// the admin statistics printout. The default invocation without a command
// starts the full-screen TUI instead.
package cli
