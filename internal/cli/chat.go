// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat loop with input history.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/peterh/liner"

	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/config"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a new ChatCLI with input history support.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	historyFile := filepath.Join(configDir, "chat_history")

	cli := &ChatCLI{
		line:        line,
		historyFile: historyFile,
	}
	cli.LoadHistory()
	return cli
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists command history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// CHAT COMMAND
// =============================================================================

// HandleChat runs the interactive chat loop. Every question in one run stays
// in the same stored conversation via the server's history id.
func HandleChat(session *auth.Store, args Args) error {
	if !isInteractive() {
		return fmt.Errorf("el chat interactivo requiere una terminal: usá 'legisbot ask'")
	}

	ctx := context.Background()
	if err := requireSession(ctx, session); err != nil {
		return err
	}

	input := NewChatCLI()
	defer input.Close()

	user := session.User()
	fmt.Println(infoStyle.Render(fmt.Sprintf(
		"Conectado como %s. Escribí tu consulta, /nueva para otra conversación, /salir para terminar.",
		user.DisplayName())))

	var historyID *int
	for {
		line, err := input.ReadInput(promptStyle.Render("legisbot> "))
		if err != nil {
			// Ctrl+C or EOF ends the loop.
			if err == liner.ErrPromptAborted {
				fmt.Println()
			}
			return nil
		}

		query := strings.TrimSpace(line)
		switch {
		case query == "":
			continue
		case query == "/salir" || query == "/exit" || query == "/quit":
			return nil
		case query == "/nueva" || query == "/new":
			historyID = nil
			fmt.Println(infoStyle.Render("Conversación nueva."))
			continue
		case query == "/ayuda" || query == "/help":
			fmt.Println(infoStyle.Render("/nueva conversación nueva · /salir terminar · /ayuda esta ayuda"))
			continue
		case strings.HasPrefix(query, "/"):
			fmt.Println(warningStyle.Render("Comando desconocido: " + query))
			continue
		}

		result, err := session.Client().Query(ctx, query, historyID)
		if err != nil {
			fmt.Println(warningStyle.Render("Error: no se pudo consultar el servidor."))
			continue
		}
		if result.HistoryID != nil {
			historyID = result.HistoryID
		}

		fmt.Print(renderAnswer(result.Answer))
		if len(result.Sources) > 0 {
			fmt.Println(infoStyle.Render(formatSources(result.Sources)))
		}
	}
}
