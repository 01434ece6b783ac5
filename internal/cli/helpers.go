// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli shared helpers used across multiple commands.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/model"
)

// outputJSON outputs data as indented JSON on stdout.
func outputJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// promptInput prompts the user for one line of input.
func promptInput(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// requireSession bootstraps the session and fails when no valid credential is
// stored. All authenticated commands go through here.
func requireSession(ctx context.Context, session *auth.Store) error {
	if session.Bootstrap(ctx) != auth.StateAuthenticated {
		return fmt.Errorf("no hay sesión activa: ejecutá 'legisbot login'")
	}
	return nil
}

// requireAdmin additionally checks the admin role.
func requireAdmin(ctx context.Context, session *auth.Store) error {
	if err := requireSession(ctx, session); err != nil {
		return err
	}
	user := session.User()
	if user == nil || !user.IsAdmin() {
		return fmt.Errorf("las estadísticas requieren una cuenta de administrador")
	}
	return nil
}

// formatSources renders citations for plain terminal output.
func formatSources(sources []model.Source) string {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		if s.Page > 0 {
			parts = append(parts, fmt.Sprintf("%s (pág. %d)", s.Source, s.Page))
		} else {
			parts = append(parts, s.Source)
		}
	}
	return "Fuentes: " + strings.Join(parts, ", ")
}

// formatTimestamp renders a stored session timestamp for listings.
func formatTimestamp(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
