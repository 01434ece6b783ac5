// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"testing"

	"github.com/reloguito/legisbot-tui/internal/model"
)

func TestArgParser_FlagsAndPositionals(t *testing.T) {
	args := NewArgParser([]string{"show", "--id", "7", "--format=json", "--verbose", "extra"})

	if got := args.Subcommand(); got != "show" {
		t.Errorf("Subcommand() = %q, want %q", got, "show")
	}
	if got := args.Flag("id"); got != "7" {
		t.Errorf("Flag(id) = %q, want %q", got, "7")
	}
	if got := args.Flag("format"); got != "json" {
		t.Errorf("Flag(format) = %q, want %q", got, "json")
	}
	if !args.BoolFlag("verbose") {
		t.Error("BoolFlag(verbose) = false, want true")
	}
	if got := args.Positional(1); got != "extra" {
		t.Errorf("Positional(1) = %q, want %q", got, "extra")
	}
	if got := args.PositionalCount(); got != 2 {
		t.Errorf("PositionalCount() = %d, want 2", got)
	}
}

func TestArgParser_ExplicitBoolValues(t *testing.T) {
	args := NewArgParser([]string{"--json=false", "--confirm=true"})

	if args.BoolFlag("json") {
		t.Error("BoolFlag(json) = true, want false for --json=false")
	}
	if !args.BoolFlag("confirm") {
		t.Error("BoolFlag(confirm) = false, want true for --confirm=true")
	}
}

func TestArgParser_FlagIntOrDefault(t *testing.T) {
	args := NewArgParser([]string{"--lines", "50", "--bad", "abc"})

	if got := args.FlagIntOrDefault("lines", 10); got != 50 {
		t.Errorf("FlagIntOrDefault(lines) = %d, want 50", got)
	}
	if got := args.FlagIntOrDefault("bad", 10); got != 10 {
		t.Errorf("FlagIntOrDefault(bad) = %d, want default 10", got)
	}
	if got := args.FlagIntOrDefault("missing", 10); got != 10 {
		t.Errorf("FlagIntOrDefault(missing) = %d, want default 10", got)
	}
}

func TestJoinPositionalArgs(t *testing.T) {
	args := NewArgParser([]string{"qué", "dice", "la", "ley"})

	if got := JoinPositionalArgs(args, 0); got != "qué dice la ley" {
		t.Errorf("JoinPositionalArgs = %q", got)
	}
	if got := JoinPositionalArgs(args, 10); got != "" {
		t.Errorf("JoinPositionalArgs out of range = %q, want empty", got)
	}
}

func TestParseGlobalFlags(t *testing.T) {
	remaining, parsed := parseGlobalFlags([]string{"--json", "history", "--verbose", "show"})

	if !parsed.JSON {
		t.Error("JSON flag not parsed")
	}
	if !parsed.Verbose {
		t.Error("Verbose flag not parsed")
	}
	if len(remaining) != 2 || remaining[0] != "history" || remaining[1] != "show" {
		t.Errorf("remaining = %v, want [history show]", remaining)
	}
}

func TestFormatSources(t *testing.T) {
	got := formatSources([]model.Source{
		{Source: "ley_27275.pdf", Page: 3},
		{Source: "anexo.pdf"},
	})
	want := "Fuentes: ley_27275.pdf (pág. 3), anexo.pdf"
	if got != want {
		t.Errorf("formatSources = %q, want %q", got, want)
	}
}
