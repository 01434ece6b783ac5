// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// =============================================================================
// ADMIN STAT POINTS
// =============================================================================

// GroupCount is one row of a grouped statistic (demographics, top queries).
type GroupCount struct {
	Group string  `json:"group"`
	Count float64 `json:"count"`
}

// DateCount is one row of the per-day usage statistic.
type DateCount struct {
	Date  string  `json:"date"`
	Count float64 `json:"count"`
}

// =============================================================================
// CHART SERIES
// =============================================================================

// Series is a chart-ready label/value pairing. One independent instance is
// derived per fetch and discarded on refetch; the chart renderer consumes it
// without knowing which endpoint produced it.
type Series struct {
	Title  string
	Labels []string
	Values []float64
}

// Empty reports whether the series has nothing to draw.
func (s Series) Empty() bool {
	return len(s.Labels) == 0
}

// SeriesFromGroups maps grouped rows into a series, preserving order.
func SeriesFromGroups(title string, rows []GroupCount) Series {
	s := Series{Title: title}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.Group)
		s.Values = append(s.Values, r.Count)
	}
	return s
}

// SeriesFromUsage maps per-day rows into a series. Dates that parse as
// RFC 3339 or YYYY-MM-DD are reformatted as DD/MM/YYYY; anything else is
// kept verbatim.
func SeriesFromUsage(title string, rows []DateCount) Series {
	s := Series{Title: title}
	for _, r := range rows {
		s.Labels = append(s.Labels, formatDateLabel(r.Date))
		s.Values = append(s.Values, r.Count)
	}
	return s
}

func formatDateLabel(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("02/01/2006")
		}
	}
	return raw
}
