// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reloguito/legisbot-tui/internal/model"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
	"github.com/reloguito/legisbot-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is one key hint shown on the right side of the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar: identity on the left, key hints on the
// right.
type StatusBar struct {
	theme *styles.Theme
	width int
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) StatusBar {
	return StatusBar{theme: theme}
}

// SetWidth updates the render width.
func (b *StatusBar) SetWidth(width int) {
	b.width = width
}

// View renders the bar for the given identity and shortcuts.
func (b StatusBar) View(user *model.User, shortcuts []Shortcut) string {
	identity := "sin sesión"
	if user != nil {
		identity = user.DisplayName()
		if user.IsAdmin() {
			identity += " (admin)"
		}
	}
	identity = util.TruncateWidth(identity, b.width/2)
	left := b.theme.StatusValue.Render(identity)

	parts := make([]string, 0, len(shortcuts))
	for _, sc := range shortcuts {
		parts = append(parts, b.theme.StatusKey.Render(sc.Key)+" "+b.theme.StatusValue.Render(sc.Desc))
	}
	right := strings.Join(parts, "  ")

	gap := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		// Drop hints before squeezing the identity.
		right = ""
		gap = b.width - lipgloss.Width(left) - 2
		if gap < 1 {
			gap = 1
		}
	}

	return b.theme.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}
