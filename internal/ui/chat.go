// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/reloguito/legisbot-tui/internal/api"
	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/model"
	"github.com/reloguito/legisbot-tui/internal/ui/components"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

// =============================================================================
// CHAT SCREEN
// =============================================================================

// chatModel is the document query screen: a transcript viewport over a single
// input line. The transcript is rebuilt from scratch on every visit; only the
// server-side history id survives within one visit, so follow-up questions
// stay in the same stored session.
type chatModel struct {
	theme  *styles.Theme
	width  int
	height int

	viewport viewport.Model
	input    textinput.Model
	spin     components.Spinner

	transcript *model.Transcript
	historyID  *int

	contexts   []api.DocumentContext
	contextIdx int

	ready bool
}

func newChatModel(theme *styles.Theme) chatModel {
	input := textinput.New()
	input.Placeholder = "Escribí tu consulta..."
	input.CharLimit = 2000
	input.Focus()

	return chatModel{
		theme:      theme,
		input:      input,
		spin:       components.NewSpinner(""),
		transcript: model.NewTranscript(),
	}
}

// open starts a fresh conversation. The context list is fetched in the
// background; a failure there degrades silently to an unscoped chat.
func (m chatModel) open(session *auth.Store) (chatModel, tea.Cmd) {
	m.transcript = model.NewTranscript()
	m.historyID = nil
	m.contexts = nil
	m.contextIdx = 0
	m.input.SetValue("")
	m.input.Focus()
	m.refreshViewport()

	client := session.Client()
	return m, func() tea.Msg {
		contexts, err := client.Contexts(context.Background())
		return contextsMsg{Contexts: contexts, Err: err}
	}
}

func (m *chatModel) setSize(width, height int) {
	m.width = width
	m.height = height

	// One line for the context selector, three for the bordered input.
	vpHeight := height - 4
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.input.Width = width - 6
	m.refreshViewport()
}

// =============================================================================
// UPDATE
// =============================================================================

func (m chatModel) update(msg tea.Msg, session *auth.Store, logger *zap.Logger) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contextsMsg:
		if msg.Err != nil {
			// Non-critical fetch: the chat works without a context list.
			logger.Debug("context list unavailable", zap.Error(msg.Err))
			return m, nil
		}
		m.contexts = msg.Contexts
		m.contextIdx = 0
		return m, nil

	case queryResultMsg:
		if msg.Err != nil {
			if api.IsAuthError(msg.Err) {
				session.Invalidate()
				return m, func() tea.Msg { return navigateMsg{Screen: ScreenLogin} }
			}
			logger.Warn("query failed", zap.Error(msg.Err))
			m.transcript.ResolveError(msg.PendingID)
		} else {
			m.transcript.ResolveAnswer(msg.PendingID, msg.Result.Answer, msg.Result.Sources)
			if msg.Result.HistoryID != nil {
				m.historyID = msg.Result.HistoryID
			}
		}
		m.refreshViewport()
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submit(session, logger)
		case "tab":
			if len(m.contexts) > 0 {
				m.contextIdx = (m.contextIdx + 1) % len(m.contexts)
			}
			return m, nil
		case "pgup", "pgdown", "ctrl+u", "ctrl+d":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmds []tea.Cmd
	if m.transcript.InFlight() {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		m.refreshViewport()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit begins a transcript turn and fires the query. The transcript guards
// against blank input and against a second submission while one is in flight,
// so both are silent no-ops here.
func (m chatModel) submit(session *auth.Store, logger *zap.Logger) (chatModel, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	pendingID, ok := m.transcript.Begin(query)
	if !ok {
		return m, nil
	}

	m.input.SetValue("")
	m.refreshViewport()
	m.viewport.GotoBottom()
	logger.Debug("query submitted", zap.String("pending_id", pendingID))

	client := session.Client()
	historyID := m.historyID
	queryCmd := func() tea.Msg {
		result, err := client.Query(context.Background(), query, historyID)
		return queryResultMsg{PendingID: pendingID, Result: result, Err: err}
	}
	return m, tea.Batch(queryCmd, m.spin.Tick())
}

// =============================================================================
// VIEW
// =============================================================================

func (m *chatModel) refreshViewport() {
	if !m.ready {
		return
	}
	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderTranscript())
	if atBottom {
		m.viewport.GotoBottom()
	}
}

func (m *chatModel) renderTranscript() string {
	turns := m.transcript.Turns()
	if len(turns) == 0 {
		return m.theme.EmptyState.Render("Hacé una pregunta sobre los documentos cargados.")
	}

	bubbleWidth := m.width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	var b strings.Builder
	for i, turn := range turns {
		if i > 0 {
			b.WriteString("\n")
		}
		switch turn.Role {
		case model.TurnUser:
			bubble := m.theme.UserBubble.MaxWidth(bubbleWidth).Render(turn.Text)
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble))
		case model.TurnPending:
			b.WriteString(m.theme.PendingBubble.MaxWidth(bubbleWidth).Render(
				m.spin.View() + " " + turn.Text))
		case model.TurnAssistant:
			b.WriteString(m.theme.AssistantBubble.MaxWidth(bubbleWidth).Render(turn.Text))
			if len(turn.Sources) > 0 {
				b.WriteString("\n")
				b.WriteString(m.theme.SourceCitation.Render(renderSources(turn.Sources)))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderSources formats citations as "Fuentes: doc.pdf (pág. 3), otro.pdf (pág. 7)".
func renderSources(sources []model.Source) string {
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

func (m chatModel) view() string {
	if !m.ready {
		return ""
	}

	contextLine := m.theme.FormHint.Render("Contexto: todos los documentos")
	if len(m.contexts) > 0 {
		name := m.contexts[m.contextIdx].Name
		if name == "" {
			name = m.contexts[m.contextIdx].ID
		}
		contextLine = m.theme.FormLabel.Render("Contexto: ") +
			m.theme.FormHint.Render("◂ "+name+" ▸ (tab)")
	}

	inputStyle := m.theme.FieldFocused
	if m.transcript.InFlight() {
		inputStyle = m.theme.FieldBlurred
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		contextLine,
		m.viewport.View(),
		inputStyle.Width(m.width-2).Render(m.input.View()),
	)
}
