// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// stats_cmd.go - admin usage statistics printout.
package cli

import (
	"context"
	"fmt"

	"github.com/reloguito/legisbot-tui/internal/auth"
	"github.com/reloguito/legisbot-tui/internal/model"
	"github.com/reloguito/legisbot-tui/internal/ui/components"
	"github.com/reloguito/legisbot-tui/internal/ui/styles"
)

// statsOutput is the --json shape of the dashboard.
type statsOutput struct {
	Demographics []model.GroupCount `json:"demographics"`
	Usage        []model.DateCount  `json:"usage"`
	TopQueries   []model.GroupCount `json:"top_queries"`
}

// HandleStats prints the three admin charts. Each fetch fails independently:
// a failed chart prints its empty state and the rest still render.
func HandleStats(session *auth.Store, args Args) error {
	ctx := context.Background()
	if err := requireAdmin(ctx, session); err != nil {
		return err
	}
	client := session.Client()

	demographics, demErr := client.Demographics(ctx)
	usage, useErr := client.Usage(ctx)
	topQueries, topErr := client.TopQueries(ctx)

	if args.JSON {
		return outputJSON(buildStatsOutput(demographics, demErr, usage, useErr, topQueries, topErr))
	}

	chart := components.NewBarChart(styles.NewTheme())
	width := terminalWidth()
	if width > 100 {
		width = 100
	}
	chart.SetWidth(width)

	printChart(chart, model.SeriesFromGroups("Demografía de Usuarios", demographics),
		demErr, "No hay datos demográficos para mostrar.")
	printChart(chart, model.SeriesFromUsage("Uso por Día", usage),
		useErr, "No hay datos de uso para mostrar.")
	printChart(chart, model.SeriesFromGroups("Consultas Más Frecuentes", topQueries),
		topErr, "No hay consultas registradas.")
	return nil
}

// buildStatsOutput nulls out any chart whose fetch failed, so the others
// still come through. Mirrors the per-chart isolation of the plain output.
func buildStatsOutput(dem []model.GroupCount, demErr error,
	usage []model.DateCount, useErr error,
	top []model.GroupCount, topErr error) statsOutput {

	out := statsOutput{Demographics: dem, Usage: usage, TopQueries: top}
	if demErr != nil {
		out.Demographics = nil
	}
	if useErr != nil {
		out.Usage = nil
	}
	if topErr != nil {
		out.TopQueries = nil
	}
	return out
}

func printChart(chart components.BarChart, series model.Series, err error, empty string) {
	if err != nil {
		series = model.Series{Title: series.Title}
	}
	fmt.Println(chart.View(series, empty))
	fmt.Println()
}
