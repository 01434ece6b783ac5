// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the legisbot client:
// users, chat transcripts, stored history sessions, and chart series.
package model
