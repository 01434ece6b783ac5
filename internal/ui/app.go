// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/ui/components"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

// =============================================================================
// SCREENS
// =============================================================================

// Screen identifies one view of the application.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenOnboarding
	ScreenChat
	ScreenHistory
	ScreenStats
)

// Title returns the header title for the screen.
func (s Screen) Title() string {
	switch s {
	case ScreenLogin:
		return "Iniciar sesión"
	case ScreenRegister:
		return "Registrarse"
	case ScreenOnboarding:
		return "Completar onboarding"
	case ScreenChat:
		return "Chat (Consulta documentos)"
	case ScreenHistory:
		return "Historial de chat"
	case ScreenStats:
		return "Estadísticas"
	default:
		return ""
	}
}

// protected reports whether the screen sits behind the route guard.
func (s Screen) protected() bool {
	return s != ScreenLogin && s != ScreenRegister
}

// adminOnly reports whether the screen requires the admin role.
func (s Screen) adminOnly() bool {
	return s == ScreenStats
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root Bubble Tea model. It owns the session store, routes every
// screen switch through the route guard, and delegates everything else to
// the active screen's sub-model.
type App struct {
	session *auth.Store
	logger  *zap.Logger
	theme   *styles.Theme

	width  int
	height int

	screen Screen
	status components.StatusBar

	login      loginModel
	register   registerModel
	onboarding onboardingModel
	chat       chatModel
	history    historyModel
	stats      statsModel
}

// NewApp creates the root model around an un-bootstrapped session store.
func NewApp(session *auth.Store, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := styles.NewTheme()
	return App{
		session:    session,
		logger:     logger,
		theme:      theme,
		screen:     ScreenLogin,
		status:     components.NewStatusBar(theme),
		login:      newLoginModel(theme),
		register:   newRegisterModel(theme),
		onboarding: newOnboardingModel(theme),
		chat:       newChatModel(theme),
		history:    newHistoryModel(theme),
		stats:      newStatsModel(theme),
	}
}

// Init starts the one-time session bootstrap. Nothing protected renders
// until it completes.
func (a App) Init() tea.Cmd {
	session := a.session
	return func() tea.Msg {
		return bootstrapDoneMsg{State: session.Bootstrap(context.Background())}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.status.SetWidth(msg.Width)
		a.login.setSize(msg.Width, msg.Height)
		a.register.setSize(msg.Width, msg.Height)
		a.onboarding.setSize(msg.Width, msg.Height)
		a.chat.setSize(msg.Width, msg.Height-chromeHeight)
		a.history.setSize(msg.Width, msg.Height-chromeHeight)
		a.stats.setSize(msg.Width, msg.Height-chromeHeight)
		return a, nil

	case bootstrapDoneMsg:
		if msg.State == auth.StateAuthenticated {
			if user := a.session.User(); user != nil && !user.HasCompletedOnboarding {
				return a.navigate(ScreenOnboarding)
			}
			return a.navigate(ScreenChat)
		}
		return a.navigate(ScreenLogin)

	case navigateMsg:
		return a.navigate(msg.Screen)

	case tea.KeyMsg:
		if model, cmd, handled := a.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	return a.updateScreen(msg)
}

// handleGlobalKey processes keys that work on every screen.
func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit, true
	case "f2":
		if a.session.State() == auth.StateAuthenticated {
			model, cmd := a.navigate(ScreenChat)
			return model, cmd, true
		}
	case "f3":
		if a.session.State() == auth.StateAuthenticated {
			model, cmd := a.navigate(ScreenHistory)
			return model, cmd, true
		}
	case "f4":
		if a.session.State() == auth.StateAuthenticated {
			model, cmd := a.navigate(ScreenStats)
			return model, cmd, true
		}
	case "f10":
		if a.session.State() == auth.StateAuthenticated {
			// Logout always succeeds and lands on the login screen.
			a.session.Logout()
			a.login = a.login.reset()
			a.screen = ScreenLogin
			return a, nil, true
		}
	}
	return a, nil, false
}

// navigate switches screens, consulting the route guard for protected ones.
// The guard runs on every navigation, never just once.
func (a App) navigate(target Screen) (tea.Model, tea.Cmd) {
	if target.protected() {
		switch auth.Decide(a.session.State(), a.session.User(), target.adminOnly()) {
		case auth.DecisionLoading:
			return a, nil
		case auth.DecisionRedirectLogin:
			a.screen = ScreenLogin
			a.login = a.login.reset()
			return a, nil
		case auth.DecisionRedirectHome:
			target = ScreenChat
		}
	}

	a.screen = target
	switch target {
	case ScreenLogin:
		a.login = a.login.reset()
		return a, nil
	case ScreenRegister:
		a.register = a.register.reset()
		return a, nil
	case ScreenOnboarding:
		a.onboarding = a.onboarding.reset(a.session.User())
		return a, nil
	case ScreenChat:
		var cmd tea.Cmd
		a.chat, cmd = a.chat.open(a.session)
		return a, cmd
	case ScreenHistory:
		var cmd tea.Cmd
		a.history, cmd = a.history.open(a.session)
		return a, cmd
	case ScreenStats:
		var cmd tea.Cmd
		a.stats, cmd = a.stats.open(a.session)
		return a, cmd
	}
	return a, nil
}

// updateScreen routes a message to the active screen only. Results arriving
// for a screen the user already left are dropped with the message.
func (a App) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		a.login, cmd = a.login.update(msg, a.session, a.logger)
	case ScreenRegister:
		a.register, cmd = a.register.update(msg, a.session, a.logger)
	case ScreenOnboarding:
		a.onboarding, cmd = a.onboarding.update(msg, a.session, a.logger)
	case ScreenChat:
		a.chat, cmd = a.chat.update(msg, a.session, a.logger)
	case ScreenHistory:
		a.history, cmd = a.history.update(msg, a.session, a.logger)
	case ScreenStats:
		a.stats, cmd = a.stats.update(msg, a.session, a.logger)
	}
	return a, cmd
}

// =============================================================================
// VIEW
// =============================================================================

// chromeHeight is the header plus status bar.
const chromeHeight = 2

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Cargando..."
	}

	// All protected rendering suspends until bootstrap completes.
	if a.session.State() == auth.StateInitializing {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			a.theme.FormHint.Render("Cargando..."))
	}

	header := a.theme.Header.Width(a.width).Render(
		a.theme.HeaderTitle.Render("LegisBot") + "  " + a.screen.Title())

	var body string
	switch a.screen {
	case ScreenLogin:
		body = a.login.view()
	case ScreenRegister:
		body = a.register.view()
	case ScreenOnboarding:
		body = a.onboarding.view()
	case ScreenChat:
		body = a.chat.view()
	case ScreenHistory:
		body = a.history.view()
	case ScreenStats:
		body = a.stats.view()
	}

	status := a.status.View(a.session.User(), a.shortcuts())
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// shortcuts returns the status bar hints for the current screen.
func (a App) shortcuts() []components.Shortcut {
	if a.session.State() != auth.StateAuthenticated {
		return []components.Shortcut{
			{Key: "tab", Desc: "cambiar"},
			{Key: "enter", Desc: "enviar"},
			{Key: "ctrl+c", Desc: "salir"},
		}
	}
	shortcuts := []components.Shortcut{
		{Key: "F2", Desc: "chat"},
		{Key: "F3", Desc: "historial"},
	}
	if user := a.session.User(); user != nil && user.IsAdmin() {
		shortcuts = append(shortcuts, components.Shortcut{Key: "F4", Desc: "estadísticas"})
	}
	shortcuts = append(shortcuts,
		components.Shortcut{Key: "F10", Desc: "cerrar sesión"},
		components.Shortcut{Key: "ctrl+c", Desc: "salir"},
	)
	return shortcuts
}
