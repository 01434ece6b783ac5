// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/reloguito/legisbot-tui/internal/api"
	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/model"
	"github.com/reloguito/legisbot-tui/internal/ui/components"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

// =============================================================================
// HISTORY SCREEN
// =============================================================================

// historyModel shows the stored chat sessions, newest first, read-only.
// A fetch failure renders the same empty state as an account with no history;
// the error only goes to the log.
type historyModel struct {
	theme  *styles.Theme
	width  int
	height int

	viewport viewport.Model
	spin     components.Spinner

	sessions []model.ChatSession
	loading  bool
	ready    bool
}

func newHistoryModel(theme *styles.Theme) historyModel {
	return historyModel{
		theme: theme,
		spin:  components.NewSpinner("Cargando historial..."),
	}
}

// open refetches on every visit; nothing is cached between visits.
func (m historyModel) open(session *auth.Store) (historyModel, tea.Cmd) {
	m.sessions = nil
	m.loading = true

	client := session.Client()
	fetchCmd := func() tea.Msg {
		sessions, err := client.History(context.Background())
		return historyMsg{Sessions: sessions, Err: err}
	}
	return m, tea.Batch(fetchCmd, m.spin.Tick())
}

func (m *historyModel) setSize(width, height int) {
	m.width = width
	m.height = height
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.viewport.SetContent(m.render())
}

// =============================================================================
// UPDATE
// =============================================================================

func (m historyModel) update(msg tea.Msg, session *auth.Store, logger *zap.Logger) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyMsg:
		m.loading = false
		if msg.Err != nil {
			if api.IsAuthError(msg.Err) {
				session.Invalidate()
				return m, func() tea.Msg { return navigateMsg{Screen: ScreenLogin} }
			}
			logger.Warn("history fetch failed", zap.Error(msg.Err))
			m.sessions = nil
		} else {
			m.sessions = msg.Sessions
		}
		if m.ready {
			m.viewport.SetContent(m.render())
			m.viewport.GotoTop()
		}
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.loading {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

// =============================================================================
// VIEW
// =============================================================================

func (m historyModel) render() string {
	if len(m.sessions) == 0 {
		return m.theme.EmptyState.Render("No tenés consultas todavía.")
	}

	var b strings.Builder
	// Newest session first.
	for i := len(m.sessions) - 1; i >= 0; i-- {
		s := m.sessions[i]
		header := fmt.Sprintf("Conversación del %s (%d mensajes)",
			s.CreatedAt.Format("02/01/2006 15:04"), len(s.Messages))
		b.WriteString(m.theme.SessionHeader.Render(header))
		b.WriteString("\n")

		for _, msg := range s.Messages {
			name := "LegisBot"
			style := m.theme.FormHint
			if msg.Sender == model.SenderUser {
				name = "Vos"
				style = m.theme.FormLabel
			}
			b.WriteString(style.Render("  " + name + ": "))
			b.WriteString(msg.Content)
			b.WriteString("\n")
			if len(msg.Sources) > 0 {
				b.WriteString(m.theme.SourceCitation.Render("    " + renderSources(msg.Sources)))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m historyModel) view() string {
	if m.loading {
		return m.spin.View()
	}
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
