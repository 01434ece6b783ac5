// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/model"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the shared glamour renderer for answer output.
var markdownRenderer *glamour.TermRenderer

// initMarkdownRenderer sets up the renderer sized to the terminal.
func initMarkdownRenderer() error {
	width := terminalWidth()
	if width > 100 {
		width = 100
	}
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return err
}

// renderAnswer renders the answer as markdown, falling back to the raw text
// when the renderer is unavailable.
func renderAnswer(answer string) string {
	if markdownRenderer == nil {
		if err := initMarkdownRenderer(); err != nil {
			return answer
		}
	}
	out, err := markdownRenderer.Render(answer)
	if err != nil {
		return answer
	}
	return strings.TrimRight(out, "\n") + "\n"
}

// =============================================================================
// ASK COMMAND
// =============================================================================

// askOutput is the --json shape of a one-shot answer.
type askOutput struct {
	Query     string         `json:"query"`
	Answer    string         `json:"answer"`
	Sources   []model.Source `json:"sources,omitempty"`
	HistoryID *int           `json:"history_id,omitempty"`
}

// HandleAsk submits a single question and prints the answer.
func HandleAsk(session *auth.Store, args Args) error {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return fmt.Errorf("falta la pregunta: legisbot ask \"pregunta\"")
	}

	ctx := context.Background()
	if err := requireSession(ctx, session); err != nil {
		return err
	}

	result, err := session.Client().Query(ctx, query, nil)
	if err != nil {
		return fmt.Errorf("no se pudo consultar el servidor: %w", err)
	}

	if args.JSON {
		return outputJSON(askOutput{
			Query:     query,
			Answer:    result.Answer,
			Sources:   result.Sources,
			HistoryID: result.HistoryID,
		})
	}

	fmt.Print(renderAnswer(result.Answer))
	if len(result.Sources) > 0 {
		fmt.Println(formatSources(result.Sources))
	}
	return nil
}
