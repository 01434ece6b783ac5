// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/reloguito/legisbot-tui/internal/model"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
	"github.com/reloguito/legisbot-tui/internal/util"
)

// Layout constants for the bar chart.
const (
	// maxLabelWidth caps the label column; top queries can be whole
	// sentences.
	maxLabelWidth = 32

	// minBarWidth is the smallest usable bar column before the chart
	// degrades to labels and values only.
	minBarWidth = 8
)

// numPrinter formats counts with es-AR digit grouping.
var numPrinter = message.NewPrinter(language.Spanish)

// =============================================================================
// BAR CHART
// =============================================================================

// BarChart renders a Series as horizontal bars. The admin statistics screen
// feeds it one independent Series per endpoint; the chart knows nothing about
// where the data came from.
type BarChart struct {
	theme *styles.Theme
	width int
}

// NewBarChart creates a bar chart renderer.
func NewBarChart(theme *styles.Theme) BarChart {
	return BarChart{theme: theme}
}

// SetWidth updates the render width.
func (c *BarChart) SetWidth(width int) {
	c.width = width
}

// View renders the series, or the empty-state placeholder when there is
// nothing to draw.
func (c BarChart) View(s model.Series, emptyText string) string {
	var b strings.Builder
	b.WriteString(c.theme.ChartTitle.Render(s.Title))
	b.WriteString("\n")

	if s.Empty() {
		b.WriteString(c.theme.EmptyState.Render(emptyText))
		b.WriteString("\n")
		return b.String()
	}

	labelWidth := 0
	maxValue := 0.0
	for i, label := range s.Labels {
		if w := len([]rune(label)); w > labelWidth {
			labelWidth = w
		}
		if s.Values[i] > maxValue {
			maxValue = s.Values[i]
		}
	}
	if labelWidth > maxLabelWidth {
		labelWidth = maxLabelWidth
	}

	valueWidth := 0
	values := make([]string, len(s.Values))
	for i, v := range s.Values {
		values[i] = numPrinter.Sprintf("%.0f", v)
		if w := len([]rune(values[i])); w > valueWidth {
			valueWidth = w
		}
	}

	barWidth := c.width - labelWidth - valueWidth - 4
	for i, label := range s.Labels {
		b.WriteString(c.theme.ChartLabel.Render(util.PadRight(util.TruncateWidth(label, labelWidth), labelWidth)))
		b.WriteString("  ")
		if barWidth >= minBarWidth && maxValue > 0 {
			filled := int(s.Values[i] / maxValue * float64(barWidth))
			if filled == 0 && s.Values[i] > 0 {
				filled = 1
			}
			b.WriteString(c.theme.ChartBar.Render(strings.Repeat("█", filled)))
			b.WriteString(strings.Repeat(" ", barWidth-filled))
			b.WriteString("  ")
		}
		b.WriteString(c.theme.ChartValue.Render(values[i]))
		b.WriteString("\n")
	}
	return b.String()
}
