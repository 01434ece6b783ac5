// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// history_cmd.go - stored conversation listing.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/model"
)

// HandleHistory lists stored conversations, or shows one in full with
// "history show <id>".
func HandleHistory(session *auth.Store, args Args) error {
	ctx := context.Background()
	if err := requireSession(ctx, session); err != nil {
		return err
	}

	sessions, err := session.Client().History(ctx)
	if err != nil {
		return fmt.Errorf("no se pudo obtener el historial: %w", err)
	}

	parser := NewArgParser(args.Raw)
	if parser.Subcommand() == "show" {
		id, err := strconv.Atoi(parser.Positional(1))
		if err != nil {
			return fmt.Errorf("uso: legisbot history show <id>")
		}
		return showSession(sessions, id, args.JSON)
	}

	if args.JSON {
		return outputJSON(sessions)
	}

	if len(sessions) == 0 {
		fmt.Println("No tenés consultas todavía.")
		return nil
	}

	// Newest first, matching the TUI.
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		fmt.Printf("%4d  %s  %d mensajes\n", s.ID, formatTimestamp(s.CreatedAt), len(s.Messages))
	}
	return nil
}

func showSession(sessions []model.ChatSession, id int, asJSON bool) error {
	for _, s := range sessions {
		if s.ID != id {
			continue
		}
		if asJSON {
			return outputJSON(s)
		}
		fmt.Printf("Conversación %d del %s\n\n", s.ID, formatTimestamp(s.CreatedAt))
		for _, msg := range s.Messages {
			name := "LegisBot"
			if msg.Sender == model.SenderUser {
				name = "Vos"
			}
			fmt.Printf("%s: %s\n", name, msg.Content)
			if len(msg.Sources) > 0 {
				fmt.Println("  " + formatSources(msg.Sources))
			}
		}
		return nil
	}
	return fmt.Errorf("no existe la conversación %d", id)
}
