// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"context"

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
// STATS SCREEN (ADMIN)
// =============================================================================

// statChart is one of the three charts on the admin dashboard. Each fetches
// and fails on its own: a failed chart shows its empty state while the other
// two render normally.
type statChart struct {
	series  model.Series
	loading bool
	empty   string
}

type statsModel struct {
	theme  *styles.Theme
	width  int
	height int

	viewport viewport.Model
	spin     components.Spinner
	chart    components.BarChart

	charts [3]statChart
	ready  bool
}

func newStatsModel(theme *styles.Theme) statsModel {
	m := statsModel{
		theme: theme,
		spin:  components.NewSpinner("Cargando..."),
		chart: components.NewBarChart(theme),
	}
	m.charts[statDemographics].empty = "No hay datos demográficos para mostrar."
	m.charts[statUsage].empty = "No hay datos de uso para mostrar."
	m.charts[statTopQueries].empty = "No hay consultas registradas."
	return m
}

// open refetches all three charts. The three commands run concurrently and
// resolve in any order.
func (m statsModel) open(session *auth.Store) (statsModel, tea.Cmd) {
	for i := range m.charts {
		m.charts[i].series = model.Series{}
		m.charts[i].loading = true
	}

	client := session.Client()
	return m, tea.Batch(
		func() tea.Msg {
			rows, err := client.Demographics(context.Background())
			return statsMsg{Kind: statDemographics,
				Series: model.SeriesFromGroups("Demografía de Usuarios", rows), Err: err}
		},
		func() tea.Msg {
			rows, err := client.Usage(context.Background())
			return statsMsg{Kind: statUsage,
				Series: model.SeriesFromUsage("Uso por Día", rows), Err: err}
		},
		func() tea.Msg {
			rows, err := client.TopQueries(context.Background())
			return statsMsg{Kind: statTopQueries,
				Series: model.SeriesFromGroups("Consultas Más Frecuentes", rows), Err: err}
		},
		m.spin.Tick(),
	)
}

func (m *statsModel) setSize(width, height int) {
	m.width = width
	m.height = height
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.chart.SetWidth(width - 2)
	m.refresh()
}

// =============================================================================
// UPDATE
// =============================================================================

func (m statsModel) update(msg tea.Msg, session *auth.Store, logger *zap.Logger) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsMsg:
		c := &m.charts[msg.Kind]
		c.loading = false
		if msg.Err != nil {
			if api.IsAuthError(msg.Err) {
				session.Invalidate()
				return m, func() tea.Msg { return navigateMsg{Screen: ScreenLogin} }
			}
			// One failed chart never blanks the others.
			logger.Warn("stat fetch failed", zap.Int("chart", int(msg.Kind)), zap.Error(msg.Err))
			c.series = model.Series{Title: msg.Series.Title}
		} else {
			c.series = msg.Series
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.anyLoading() {
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m statsModel) anyLoading() bool {
	for _, c := range m.charts {
		if c.loading {
			return true
		}
	}
	return false
}

// =============================================================================
// VIEW
// =============================================================================

func (m *statsModel) refresh() {
	if !m.ready {
		return
	}

	sections := make([]string, 0, len(m.charts))
	for _, c := range m.charts {
		if c.loading {
			sections = append(sections, m.spin.View())
			continue
		}
		sections = append(sections, m.chart.View(c.series, c.empty))
	}
	m.viewport.SetContent(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m statsModel) view() string {
	if !m.ready {
		return ""
	}
	return m.viewport.View()
}
