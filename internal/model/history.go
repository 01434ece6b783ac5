// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// SERVER-SIDE CHAT HISTORY
// =============================================================================

// SenderType identifies the author of a stored history message.
// The server uses "bot" where the live transcript uses "assistant".
type SenderType string

const (
	SenderUser SenderType = "user"
	SenderBot  SenderType = "bot"
)

// HistoryMessage is one stored message inside a chat session.
type HistoryMessage struct {
	ID      int        `json:"id"`
	Sender  SenderType `json:"sender"`
	Content string     `json:"content"`
	Sources []Source   `json:"sources,omitempty"`
}

// ChatSession is one stored conversation, as returned by the history
// endpoint. Sessions are read-only on the client; there is no pagination.
type ChatSession struct {
	ID        int              `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Messages  []HistoryMessage `json:"messages"`
}

// MessageCount returns the total number of messages across sessions.
func MessageCount(sessions []ChatSession) int {
	n := 0
	for _, s := range sessions {
		n += len(s.Messages)
	}
	return n
}
