// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/reloguito/legisbot-tui/internal/api"
	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/ui/components"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN SCREEN
// =============================================================================

// loginModel is the login form: email, password, inline error.
type loginModel struct {
	theme  *styles.Theme
	width  int
	height int

	email    textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	spin       components.Spinner
	errText    string
}

func newLoginModel(theme *styles.Theme) loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Contraseña"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{
		theme:    theme,
		email:    email,
		password: password,
		spin:     components.NewSpinner("Iniciando sesión..."),
	}
}

// reset clears the form for a fresh visit.
func (m loginModel) reset() loginModel {
	m.email.SetValue("")
	m.password.SetValue("")
	m.errText = ""
	m.submitting = false
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
	return m
}

func (m *loginModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

// =============================================================================
// UPDATE
// =============================================================================

func (m loginModel) update(msg tea.Msg, session *auth.Store, logger *zap.Logger) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.Err != nil {
			logger.Info("login rejected", zap.Error(msg.Err))
			m.errText = api.ServerMessage(msg.Err, "Error al iniciar sesión")
			return m, nil
		}
		// A fresh account goes to onboarding, everyone else home.
		target := ScreenChat
		if !msg.User.HasCompletedOnboarding {
			target = ScreenOnboarding
		}
		return m, func() tea.Msg { return navigateMsg{Screen: target} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m = m.toggleFocus()
			return m, nil
		case "ctrl+n":
			return m, func() tea.Msg { return navigateMsg{Screen: ScreenRegister} }
		case "enter":
			return m.submit(session)
		}
	}

	if m.submitting {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) toggleFocus() loginModel {
	m.focus = 1 - m.focus
	if m.focus == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.password.Focus()
		m.email.Blur()
	}
	return m
}

func (m loginModel) submit(session *auth.Store) (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.errText = "Completá email y contraseña"
		return m, nil
	}

	m.submitting = true
	m.errText = ""
	loginCmd := func() tea.Msg {
		user, err := session.Login(context.Background(), email, password)
		return loginResultMsg{User: user, Err: err}
	}
	return m, tea.Batch(loginCmd, m.spin.Tick())
}

// =============================================================================
// VIEW
// =============================================================================

func (m loginModel) view() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render("Iniciar sesión"))
	b.WriteString("\n")
	b.WriteString(m.fieldStyle(0).Render(m.email.View()))
	b.WriteString("\n")
	b.WriteString(m.fieldStyle(1).Render(m.password.View()))
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(m.theme.ErrorText.Render(m.errText))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString(m.spin.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("enter entrar · ctrl+n crear cuenta"))

	return lipgloss.Place(m.width, m.height-chromeHeight,
		lipgloss.Center, lipgloss.Center, b.String())
}

func (m loginModel) fieldStyle(idx int) lipgloss.Style {
	if m.focus == idx {
		return m.theme.FieldFocused
	}
	return m.theme.FieldBlurred
}
