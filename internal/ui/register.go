// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
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
// REGISTER SCREEN
// =============================================================================

// redirectDelay is how long the success notice stays visible before the app
// moves on to onboarding.
const redirectDelay = 1500 * time.Millisecond

type registerModel struct {
	theme  *styles.Theme
	width  int
	height int

	email    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	focus    int

	submitting bool
	spin       components.Spinner
	errText    string

	// registered holds the auto-logged-in user while the success notice is
	// on screen, waiting for the redirect tick.
	registered *model.User
}

func newRegisterModel(theme *styles.Theme) registerModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Contraseña"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	confirm := textinput.New()
	confirm.Placeholder = "Repetir contraseña"
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'

	return registerModel{
		theme:    theme,
		email:    email,
		password: password,
		confirm:  confirm,
		spin:     components.NewSpinner("Creando cuenta..."),
	}
}

func (m registerModel) reset() registerModel {
	m.email.SetValue("")
	m.password.SetValue("")
	m.confirm.SetValue("")
	m.errText = ""
	m.submitting = false
	m.registered = nil
	m.focus = 0
	m.email.Focus()
	m.password.Blur()
	m.confirm.Blur()
	return m
}

func (m *registerModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

// =============================================================================
// UPDATE
// =============================================================================

func (m registerModel) update(msg tea.Msg, session *auth.Store, logger *zap.Logger) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case registerResultMsg:
		m.submitting = false
		if msg.Err != nil {
			logger.Info("registration rejected", zap.Error(msg.Err))
			m.errText = api.ServerMessage(msg.Err, "Error al registrarse")
			return m, nil
		}
		m.registered = msg.User
		return m, tea.Tick(redirectDelay, func(time.Time) tea.Msg {
			return registerRedirectMsg{}
		})

	case registerRedirectMsg:
		if m.registered == nil {
			return m, nil
		}
		target := ScreenChat
		if !m.registered.HasCompletedOnboarding {
			target = ScreenOnboarding
		}
		return m, func() tea.Msg { return navigateMsg{Screen: target} }

	case tea.KeyMsg:
		if m.submitting || m.registered != nil {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m = m.setFocus((m.focus + 1) % 3)
			return m, nil
		case "shift+tab", "up":
			m = m.setFocus((m.focus + 2) % 3)
			return m, nil
		case "esc":
			return m, func() tea.Msg { return navigateMsg{Screen: ScreenLogin} }
		case "enter":
			return m.submit(session)
		}
	}

	if m.submitting {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	if m.registered != nil {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.email, cmd = m.email.Update(msg)
	case 1:
		m.password, cmd = m.password.Update(msg)
	case 2:
		m.confirm, cmd = m.confirm.Update(msg)
	}
	return m, cmd
}

func (m registerModel) setFocus(idx int) registerModel {
	m.focus = idx
	inputs := []*textinput.Model{&m.email, &m.password, &m.confirm}
	for i, in := range inputs {
		if i == idx {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	return m
}

func (m registerModel) submit(session *auth.Store) (registerModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	switch {
	case email == "" || password == "":
		m.errText = "Completá email y contraseña"
		return m, nil
	case password != m.confirm.Value():
		m.errText = "Las contraseñas no coinciden"
		return m, nil
	}

	m.submitting = true
	m.errText = ""
	registerCmd := func() tea.Msg {
		user, err := session.Register(context.Background(), email, password)
		return registerResultMsg{User: user, Err: err}
	}
	return m, tea.Batch(registerCmd, m.spin.Tick())
}

// =============================================================================
// VIEW
// =============================================================================

func (m registerModel) view() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render("Crear cuenta"))
	b.WriteString("\n")

	if m.registered != nil {
		b.WriteString(m.theme.SuccessText.Render("Registro exitoso. Redirigiendo..."))
		return lipgloss.Place(m.width, m.height-chromeHeight,
			lipgloss.Center, lipgloss.Center, b.String())
	}

	b.WriteString(m.fieldStyle(0).Render(m.email.View()))
	b.WriteString("\n")
	b.WriteString(m.fieldStyle(1).Render(m.password.View()))
	b.WriteString("\n")
	b.WriteString(m.fieldStyle(2).Render(m.confirm.View()))
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
	b.WriteString(m.theme.FormHint.Render("enter registrarse · esc volver"))

	return lipgloss.Place(m.width, m.height-chromeHeight,
		lipgloss.Center, lipgloss.Center, b.String())
}

func (m registerModel) fieldStyle(idx int) lipgloss.Style {
	if m.focus == idx {
		return m.theme.FieldFocused
	}
	return m.theme.FieldBlurred
}
