// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PendingAnswerText is shown in the placeholder turn while a query is in flight.
const PendingAnswerText = "LegisBot está buscando la respuesta..."

// FailedAnswerText replaces the placeholder when a submission fails. The
// underlying failure detail is logged, never shown in the transcript.
const FailedAnswerText = "Error: no se pudo consultar el servidor."

// =============================================================================
// TURN TYPES
// =============================================================================

// TurnRole identifies the author of a transcript turn.
type TurnRole string

const (
	TurnUser      TurnRole = "user"
	TurnAssistant TurnRole = "assistant"
	TurnPending   TurnRole = "pending"
)

// DisplayName returns a human-readable name for the role.
func (r TurnRole) DisplayName() string {
	switch r {
	case TurnUser:
		return "Usuario"
	case TurnAssistant, TurnPending:
		return "LegisBot"
	default:
		return string(r)
	}
}

// Source is a document citation attached to an assistant turn.
type Source struct {
	Source string `json:"source"`
	Page   int    `json:"page"`
}

// Turn is a single entry in the chat transcript.
type Turn struct {
	ID        string
	Role      TurnRole
	Text      string
	Sources   []Source
	Timestamp time.Time
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the ordered sequence of turns for one chat screen visit.
// It is append-only except for the in-place resolution of the pending turn,
// which is addressed by ID rather than by scanning for a role tag. It lives
// only in memory and is dropped when the user leaves the screen.
//
// At most one submission may be in flight: Begin refuses a second submission
// until the current one resolves.
type Transcript struct {
	turns     []Turn
	pendingID string
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Turns returns the turns in order. The returned slice is shared; callers
// must treat it as read-only.
func (t *Transcript) Turns() []Turn {
	return t.turns
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// InFlight reports whether a submission is currently pending.
func (t *Transcript) InFlight() bool {
	return t.pendingID != ""
}

// Begin starts a submission: it appends a user turn with the query and a
// placeholder pending turn, and returns the pending turn's ID.
//
// The guard makes two cases a no-op, returning ok=false with the transcript
// untouched: empty or whitespace-only input, and a submission already in
// flight.
func (t *Transcript) Begin(query string) (pendingID string, ok bool) {
	if strings.TrimSpace(query) == "" || t.InFlight() {
		return "", false
	}

	now := time.Now()
	t.turns = append(t.turns, Turn{
		ID:        uuid.NewString(),
		Role:      TurnUser,
		Text:      query,
		Timestamp: now,
	})

	pendingID = uuid.NewString()
	t.turns = append(t.turns, Turn{
		ID:        pendingID,
		Role:      TurnPending,
		Text:      PendingAnswerText,
		Timestamp: now,
	})
	t.pendingID = pendingID
	return pendingID, true
}

// ResolveAnswer replaces the pending turn with an assistant turn carrying the
// answer and its citations, and re-enables submission.
//
// A resolution whose ID does not match the current pending turn is dropped:
// this is how a response that arrives after the screen was reset avoids
// mutating a transcript it no longer belongs to.
func (t *Transcript) ResolveAnswer(pendingID, answer string, sources []Source) bool {
	idx, ok := t.resolve(pendingID)
	if !ok {
		return false
	}
	t.turns[idx] = Turn{
		ID:        pendingID,
		Role:      TurnAssistant,
		Text:      answer,
		Sources:   sources,
		Timestamp: time.Now(),
	}
	return true
}

// ResolveError replaces the pending turn with the fixed failure text and
// re-enables submission. Stale resolutions are dropped like in ResolveAnswer.
func (t *Transcript) ResolveError(pendingID string) bool {
	idx, ok := t.resolve(pendingID)
	if !ok {
		return false
	}
	t.turns[idx] = Turn{
		ID:        pendingID,
		Role:      TurnAssistant,
		Text:      FailedAnswerText,
		Timestamp: time.Now(),
	}
	return true
}

// resolve validates the pending ID, clears the in-flight marker, and returns
// the index of the turn to replace.
func (t *Transcript) resolve(pendingID string) (int, bool) {
	if pendingID == "" || pendingID != t.pendingID {
		return 0, false
	}
	t.pendingID = ""
	for i := range t.turns {
		if t.turns[i].ID == pendingID {
			return i, true
		}
	}
	return 0, false
}
