// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeriesFromGroups(t *testing.T) {
	rows := []GroupCount{
		{Group: "Buenos Aires", Count: 12},
		{Group: "Córdoba", Count: 5},
	}

	got := SeriesFromGroups("Demografía", rows)

	want := Series{
		Title:  "Demografía",
		Labels: []string{"Buenos Aires", "Córdoba"},
		Values: []float64{12, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SeriesFromGroups() mismatch (-want +got):\n%s", diff)
	}
}

func TestSeriesFromUsage_DateFormatting(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{"plain date", "2025-03-09", "09/03/2025"},
		{"rfc3339", "2025-03-09T14:30:00Z", "09/03/2025"},
		{"unparseable kept verbatim", "semana 12", "semana 12"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := SeriesFromUsage("Uso", []DateCount{{Date: tc.date, Count: 1}})
			if s.Labels[0] != tc.want {
				t.Errorf("label = %q, want %q", s.Labels[0], tc.want)
			}
		})
	}
}

func TestSeries_Empty(t *testing.T) {
	if !SeriesFromGroups("t", nil).Empty() {
		t.Error("series from no rows should be empty")
	}
	if SeriesFromGroups("t", []GroupCount{{Group: "g", Count: 1}}).Empty() {
		t.Error("series with rows should not be empty")
	}
}
