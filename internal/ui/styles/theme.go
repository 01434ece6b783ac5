// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// ==========================================================================
	// HEADER / CHROME
	// ==========================================================================

	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	StatusBar   lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	PendingBubble   lipgloss.Style
	SourceCitation  lipgloss.Style

	// ==========================================================================
	// FORMS
	// ==========================================================================

	FormTitle    lipgloss.Style
	FormLabel    lipgloss.Style
	FormHint     lipgloss.Style
	ErrorText    lipgloss.Style
	SuccessText  lipgloss.Style
	FieldFocused lipgloss.Style
	FieldBlurred lipgloss.Style

	// ==========================================================================
	// CHARTS / LISTS
	// ==========================================================================

	ChartTitle lipgloss.Style
	ChartBar   lipgloss.Style
	ChartLabel lipgloss.Style
	ChartValue lipgloss.Style
	EmptyState lipgloss.Style

	SessionHeader lipgloss.Style
}

// NewTheme creates a theme for the detected terminal.
func NewTheme() *Theme {
	t := &Theme{
		IsDark:       lipgloss.HasDarkBackground(),
		ColorProfile: termenv.ColorProfile(),
	}

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextPrimary).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Blue)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)
	t.StatusKey = lipgloss.NewStyle().Bold(true).Foreground(Blue)
	t.StatusValue = lipgloss.NewStyle().Foreground(TextSecondary)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Blue).
		Padding(0, 1)
	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Emerald).
		Padding(0, 1)
	t.PendingBubble = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Amber).
		Padding(0, 1)
	t.SourceCitation = lipgloss.NewStyle().Foreground(TextMuted)

	t.FormTitle = lipgloss.NewStyle().Bold(true).Foreground(Blue).MarginBottom(1)
	t.FormLabel = lipgloss.NewStyle().Foreground(TextSecondary)
	t.FormHint = lipgloss.NewStyle().Foreground(TextMuted)
	t.ErrorText = lipgloss.NewStyle().Foreground(Rose)
	t.SuccessText = lipgloss.NewStyle().Foreground(Emerald)
	t.FieldFocused = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Blue).
		Padding(0, 1)
	t.FieldBlurred = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.ChartTitle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimary)
	t.ChartBar = lipgloss.NewStyle().Foreground(Blue)
	t.ChartLabel = lipgloss.NewStyle().Foreground(TextSecondary)
	t.ChartValue = lipgloss.NewStyle().Foreground(TextMuted)
	t.EmptyState = lipgloss.NewStyle().Foreground(TextMuted).Italic(true)

	t.SessionHeader = lipgloss.NewStyle().Bold(true).Foreground(TextSecondary)

	return t
}
