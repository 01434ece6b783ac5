// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/reloguito/legisbot-tui/internal/model"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

func TestBarChart_EmptySeries(t *testing.T) {
	chart := NewBarChart(styles.NewTheme())
	chart.SetWidth(80)

	out := chart.View(model.Series{Title: "Demografía"}, "No hay datos demográficos para mostrar.")

	if !strings.Contains(out, "Demografía") {
		t.Error("title missing from empty chart")
	}
	if !strings.Contains(out, "No hay datos demográficos para mostrar.") {
		t.Error("empty placeholder missing")
	}
	if strings.Contains(out, "█") {
		t.Error("empty chart should not draw bars")
	}
}

func TestBarChart_RendersAllRows(t *testing.T) {
	chart := NewBarChart(styles.NewTheme())
	chart.SetWidth(80)

	series := model.Series{
		Title:  "Uso por Día",
		Labels: []string{"01/03/2025", "02/03/2025", "03/03/2025"},
		Values: []float64{10, 5, 0},
	}
	out := chart.View(series, "sin datos")

	for _, label := range series.Labels {
		if !strings.Contains(out, label) {
			t.Errorf("label %q missing from chart", label)
		}
	}
	if !strings.Contains(out, "█") {
		t.Error("no bars drawn for non-zero values")
	}
}

func TestBarChart_NarrowWidthDropsBars(t *testing.T) {
	chart := NewBarChart(styles.NewTheme())
	chart.SetWidth(20)

	series := model.Series{
		Title:  "Consultas Más Frecuentes",
		Labels: []string{"¿qué es una versión taquigráfica y para qué sirve?"},
		Values: []float64{3},
	}
	out := chart.View(series, "sin datos")

	// Values are still visible even when there is no room for bars.
	if !strings.Contains(out, "3") {
		t.Error("value missing from narrow chart")
	}
}
