// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// =============================================================================
// SUBMISSION GUARD TESTS
// =============================================================================

func TestTranscript_Begin_RejectsBlankInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"spaces", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTranscript()
			if _, ok := tr.Begin(tc.query); ok {
				t.Error("Begin() accepted blank input")
			}
			if tr.Len() != 0 {
				t.Errorf("transcript has %d turns, want 0", tr.Len())
			}
			if tr.InFlight() {
				t.Error("blank input left a submission in flight")
			}
		})
	}
}

func TestTranscript_Begin_RejectsSecondSubmission(t *testing.T) {
	tr := NewTranscript()
	if _, ok := tr.Begin("primera consulta"); !ok {
		t.Fatal("first Begin() rejected")
	}

	lenBefore := tr.Len()
	if _, ok := tr.Begin("segunda consulta"); ok {
		t.Error("Begin() accepted a submission while one was pending")
	}
	if tr.Len() != lenBefore {
		t.Errorf("transcript length changed: %d -> %d", lenBefore, tr.Len())
	}
}

func TestTranscript_Begin_AppendsUserAndPending(t *testing.T) {
	tr := NewTranscript()
	id, ok := tr.Begin("¿qué dice el artículo 5?")
	if !ok {
		t.Fatal("Begin() rejected valid input")
	}

	turns := tr.Turns()
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].Role != TurnUser || turns[0].Text != "¿qué dice el artículo 5?" {
		t.Errorf("first turn = %+v, want user turn with query", turns[0])
	}
	if turns[1].Role != TurnPending || turns[1].ID != id {
		t.Errorf("second turn = %+v, want pending turn with id %s", turns[1], id)
	}
	if !tr.InFlight() {
		t.Error("InFlight() = false after Begin")
	}
}

// =============================================================================
// RESOLUTION TESTS
// =============================================================================

func TestTranscript_ResolveAnswer_ReplacesPendingInPlace(t *testing.T) {
	tr := NewTranscript()

	// An earlier, already-resolved exchange must survive untouched.
	first, _ := tr.Begin("primera")
	tr.ResolveAnswer(first, "respuesta uno", nil)
	priorTurns := append([]Turn(nil), tr.Turns()...)

	id, _ := tr.Begin("segunda")
	sources := []Source{{Source: "acta.pdf", Page: 12}}
	if !tr.ResolveAnswer(id, "respuesta dos", sources) {
		t.Fatal("ResolveAnswer() rejected matching pending ID")
	}

	turns := tr.Turns()
	if len(turns) != 4 {
		t.Fatalf("got %d turns, want 4", len(turns))
	}
	ignoreTime := cmpopts.IgnoreFields(Turn{}, "Timestamp")
	if diff := cmp.Diff(priorTurns, turns[:2], ignoreTime); diff != "" {
		t.Errorf("prior turns changed (-want +got):\n%s", diff)
	}

	got := turns[3]
	if got.Role != TurnAssistant || got.Text != "respuesta dos" || got.ID != id {
		t.Errorf("resolved turn = %+v", got)
	}
	if diff := cmp.Diff(sources, got.Sources); diff != "" {
		t.Errorf("sources mismatch (-want +got):\n%s", diff)
	}
	if tr.InFlight() {
		t.Error("InFlight() = true after resolution")
	}
}

func TestTranscript_ResolveError_UsesFixedText(t *testing.T) {
	tr := NewTranscript()
	id, _ := tr.Begin("consulta")

	if !tr.ResolveError(id) {
		t.Fatal("ResolveError() rejected matching pending ID")
	}

	turns := tr.Turns()
	last := turns[len(turns)-1]
	if last.Role != TurnAssistant {
		t.Errorf("role = %s, want assistant", last.Role)
	}
	if last.Text != FailedAnswerText {
		t.Errorf("text = %q, want fixed error text", last.Text)
	}
	if tr.InFlight() {
		t.Error("InFlight() = true after failed resolution")
	}

	// Submission is re-enabled once resolution completes.
	if _, ok := tr.Begin("otra consulta"); !ok {
		t.Error("Begin() still blocked after resolution")
	}
}

func TestTranscript_StaleResolutionDropped(t *testing.T) {
	tr := NewTranscript()
	id, _ := tr.Begin("consulta")
	tr.ResolveAnswer(id, "respuesta", nil)

	snapshot := append([]Turn(nil), tr.Turns()...)

	// A late duplicate resolution must not mutate anything.
	if tr.ResolveAnswer(id, "respuesta tardía", nil) {
		t.Error("stale ResolveAnswer() was applied")
	}
	if tr.ResolveError(id) {
		t.Error("stale ResolveError() was applied")
	}
	if tr.ResolveAnswer("no-such-id", "x", nil) {
		t.Error("ResolveAnswer() with unknown ID was applied")
	}

	if diff := cmp.Diff(snapshot, tr.Turns()); diff != "" {
		t.Errorf("transcript changed by stale resolution (-want +got):\n%s", diff)
	}
}
