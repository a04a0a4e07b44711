package analytics

import (
	"testing"
	"time"
)

func TestIsoWeek(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantWeek int
		wantYear int
	}{
		{"mid-year", time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC), 35, 2026},
		{"dec 31 rolls into next ISO year", time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 1, 2025},
		{"jan 1 rolls into prior ISO year", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), 52, 2022},
		{"first monday", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 1, 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, year := isoWeek(tt.date)
			if week != tt.wantWeek || year != tt.wantYear {
				t.Errorf("isoWeek(%v) = (%d, %d), want (%d, %d)", tt.date, week, year, tt.wantWeek, tt.wantYear)
			}
		})
	}
}

func TestTrendWindow(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantFrom int
		wantTo   int
		wantYear int
	}{
		{"full window mid-year", time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), 32, 35, 2026},
		{"clamped at week 1", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 1, 2, 2026},
		{"week 1 window is a single week", time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC), 1, 1, 2026},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, year := trendWindow(tt.now)
			if from != tt.wantFrom || to != tt.wantTo || year != tt.wantYear {
				t.Errorf("trendWindow(%v) = (%d, %d, %d), want (%d, %d, %d)",
					tt.now, from, to, year, tt.wantFrom, tt.wantTo, tt.wantYear)
			}
		})
	}
}
