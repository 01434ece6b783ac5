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
	"github.com/reloguito/legisbot-tui/internal/model"
	"github.com/reloguito/legisbot-tui/internal/ui/components"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

// =============================================================================
// ONBOARDING SCREEN
// =============================================================================

// Field order on the onboarding form. Province and occupation are pick lists
// cycled with left/right; everything else is free text.
const (
	fieldFirstName = iota
	fieldLastName
	fieldCountry
	fieldProvince
	fieldLocality
	fieldAge
	fieldOccupation
	fieldOccupationOther
	fieldCount
)

type onboardingModel struct {
	theme  *styles.Theme
	width  int
	height int

	inputs [fieldCount]textinput.Model
	focus  int

	provinceIdx   int
	occupationIdx int

	submitting bool
	spin       components.Spinner
	errText    string
}

func newOnboardingModel(theme *styles.Theme) onboardingModel {
	m := onboardingModel{
		theme: theme,
		spin:  components.NewSpinner("Guardando perfil..."),
	}

	placeholders := [fieldCount]string{
		fieldFirstName:       "Nombre",
		fieldLastName:        "Apellido",
		fieldCountry:         "País",
		fieldLocality:        "Localidad",
		fieldAge:             "Edad",
		fieldOccupationOther: "Profesión (otra)",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 100
		m.inputs[i] = in
	}
	m.inputs[fieldAge].CharLimit = 3
	return m
}

// reset prepares the form for the given user, prefilling any profile fields
// the server already holds.
func (m onboardingModel) reset(user *model.User) onboardingModel {
	m.errText = ""
	m.submitting = false
	m.focus = fieldFirstName
	m.provinceIdx = 0
	m.occupationIdx = 0

	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[fieldCountry].SetValue("Argentina")

	if user != nil {
		m.inputs[fieldFirstName].SetValue(user.FirstName)
		m.inputs[fieldLastName].SetValue(user.LastName)
		m.inputs[fieldLocality].SetValue(user.Locality)
		m.inputs[fieldAge].SetValue(user.Age)
		if user.Country != "" {
			m.inputs[fieldCountry].SetValue(user.Country)
		}
		for i, p := range model.Provinces {
			if p == user.Province {
				m.provinceIdx = i
				break
			}
		}
	}

	m.inputs[fieldFirstName].Focus()
	return m
}

func (m *onboardingModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

// otherVisible reports whether the free-text occupation field is active.
func (m onboardingModel) otherVisible() bool {
	return model.Occupations[m.occupationIdx] == "Otro"
}

// =============================================================================
// UPDATE
// =============================================================================

func (m onboardingModel) update(msg tea.Msg, session *auth.Store, logger *zap.Logger) (onboardingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case onboardingResultMsg:
		m.submitting = false
		if msg.Err != nil {
			if api.IsAuthError(msg.Err) {
				session.Invalidate()
				return m, func() tea.Msg { return navigateMsg{Screen: ScreenLogin} }
			}
			logger.Info("onboarding rejected", zap.Error(msg.Err))
			m.errText = api.ServerMessage(msg.Err, "Error al guardar el perfil")
			return m, nil
		}
		session.SetUser(msg.User)
		return m, func() tea.Msg { return navigateMsg{Screen: ScreenChat} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			m = m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m = m.moveFocus(-1)
			return m, nil
		case "left", "right":
			if m.focus == fieldProvince || m.focus == fieldOccupation {
				m = m.cycleChoice(msg.String() == "right")
				return m, nil
			}
		case "enter":
			return m.submit(session)
		}
	}

	if m.submitting {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.focus == fieldProvince || m.focus == fieldOccupation {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m onboardingModel) moveFocus(delta int) onboardingModel {
	m.inputs[m.focus].Blur()
	for {
		m.focus = (m.focus + delta + fieldCount) % fieldCount
		if m.focus != fieldOccupationOther || m.otherVisible() {
			break
		}
	}
	if m.focus != fieldProvince && m.focus != fieldOccupation {
		m.inputs[m.focus].Focus()
	}
	return m
}

func (m onboardingModel) cycleChoice(forward bool) onboardingModel {
	delta := 1
	if !forward {
		delta = -1
	}
	switch m.focus {
	case fieldProvince:
		n := len(model.Provinces)
		m.provinceIdx = (m.provinceIdx + delta + n) % n
	case fieldOccupation:
		n := len(model.Occupations)
		m.occupationIdx = (m.occupationIdx + delta + n) % n
	}
	return m
}

func (m onboardingModel) submit(session *auth.Store) (onboardingModel, tea.Cmd) {
	profile := model.OnboardingProfile{
		FirstName: strings.TrimSpace(m.inputs[fieldFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[fieldLastName].Value()),
		Country:   strings.TrimSpace(m.inputs[fieldCountry].Value()),
		Province:  model.Provinces[m.provinceIdx],
		Locality:  strings.TrimSpace(m.inputs[fieldLocality].Value()),
		Age:       strings.TrimSpace(m.inputs[fieldAge].Value()),
	}
	if m.otherVisible() {
		profile.Occupation = strings.TrimSpace(m.inputs[fieldOccupationOther].Value())
	} else {
		profile.Occupation = model.Occupations[m.occupationIdx]
	}

	if profile.FirstName == "" || profile.LastName == "" {
		m.errText = "Completá nombre y apellido"
		return m, nil
	}
	if m.otherVisible() && profile.Occupation == "" {
		m.errText = "Ingresá tu profesión"
		return m, nil
	}

	m.submitting = true
	m.errText = ""
	client := session.Client()
	submitCmd := func() tea.Msg {
		user, err := client.CompleteOnboarding(context.Background(), profile)
		return onboardingResultMsg{User: user, Err: err}
	}
	return m, tea.Batch(submitCmd, m.spin.Tick())
}

// =============================================================================
// VIEW
// =============================================================================

func (m onboardingModel) view() string {
	var b strings.Builder
	b.WriteString(m.theme.FormTitle.Render("Completá tu perfil"))
	b.WriteString("\n")

	b.WriteString(m.textRow(fieldFirstName))
	b.WriteString(m.textRow(fieldLastName))
	b.WriteString(m.textRow(fieldCountry))
	b.WriteString(m.choiceRow(fieldProvince, "Provincia", model.Provinces[m.provinceIdx]))
	b.WriteString(m.textRow(fieldLocality))
	b.WriteString(m.textRow(fieldAge))
	b.WriteString(m.choiceRow(fieldOccupation, "Profesión", model.Occupations[m.occupationIdx]))
	if m.otherVisible() {
		b.WriteString(m.textRow(fieldOccupationOther))
	}

	if m.errText != "" {
		b.WriteString(m.theme.ErrorText.Render(m.errText))
		b.WriteString("\n")
	}
	if m.submitting {
		b.WriteString(m.spin.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.FormHint.Render("tab campo · ←/→ elegir · enter guardar"))

	return lipgloss.Place(m.width, m.height-chromeHeight,
		lipgloss.Center, lipgloss.Center, b.String())
}

func (m onboardingModel) textRow(idx int) string {
	style := m.theme.FieldBlurred
	if m.focus == idx {
		style = m.theme.FieldFocused
	}
	return style.Render(m.inputs[idx].View()) + "\n"
}

func (m onboardingModel) choiceRow(idx int, label, value string) string {
	style := m.theme.FieldBlurred
	if m.focus == idx {
		style = m.theme.FieldFocused
	}
	return style.Render(m.theme.FormLabel.Render(label+": ")+"◂ "+value+" ▸") + "\n"
}
