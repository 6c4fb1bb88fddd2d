package domain_test

import (
	"testing"
	"time"

	"dosetrack/internal/domain"
)

func TestDaysSinceLastInjection(t *testing.T) {
	tests := []struct {
		name string
		logs []domain.InjectionLog
		want int
	}{
		{"no logs", nil, 0},
		{"less than a day", []domain.InjectionLog{logAt("1", "s", 23*time.Hour)}, 0},
		{"floors partial days", []domain.InjectionLog{logAt("1", "s", 59*time.Hour)}, 2},
		{
			"uses most recent",
			[]domain.InjectionLog{logAt("2", "s", 3*24*time.Hour), logAt("1", "s", 9*24*time.Hour)},
			3,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.DaysSinceLastInjection(tc.logs, now); got != tc.want {
				t.Errorf("DaysSinceLastInjection() = %d; want %d", got, tc.want)
			}
		})
	}
}

func entry(id, day string, w float64) domain.WeightEntry {
	d, err := domain.ParseDay(day)
	if err != nil {
		panic(err)
	}
	return domain.WeightEntry{ID: id, Date: d, Weight: w}
}

func TestTotalWeightLost(t *testing.T) {
	a := entry("a", "2026-01-01", 200)
	b := entry("b", "2026-01-08", 195)
	c := entry("c", "2026-01-15", 190)

	orders := [][]domain.WeightEntry{
		{a, b, c}, {c, b, a}, {b, a, c}, {c, a, b},
	}
	for _, entries := range orders {
		if got := domain.TotalWeightLost(entries); got != 10 {
			t.Errorf("TotalWeightLost(%v) = %v; want 10", entries, got)
		}
	}
	entries := []domain.WeightEntry{c, a}
	domain.TotalWeightLost(entries)
	if entries[0].ID != "c" {
		t.Fatal("input was reordered")
	}
}

func TestTotalWeightLost_Edges(t *testing.T) {
	if got := domain.TotalWeightLost(nil); got != 0 {
		t.Errorf("empty = %v", got)
	}
	if got := domain.TotalWeightLost([]domain.WeightEntry{entry("a", "2026-01-01", 200)}); got != 0 {
		t.Errorf("single = %v", got)
	}
	gained := []domain.WeightEntry{entry("a", "2026-01-01", 180), entry("b", "2026-02-01", 184.5)}
	if got := domain.TotalWeightLost(gained); got != -4.5 {
		t.Errorf("gain = %v; want -4.5", got)
	}
}

func logsWithin(n int) []domain.InjectionLog {
	logs := make([]domain.InjectionLog, 0, n)
	for i := 0; i < n; i++ {
		logs = append(logs, logAt("in", "s", time.Duration(i)*24*time.Hour))
	}
	return logs
}

func TestAdherenceRate(t *testing.T) {
	tests := []struct {
		name string
		logs []domain.InjectionLog
		want int
	}{
		{"none", nil, 0},
		{"one dose rounds half up", logsWithin(1), 13},
		{"half", logsWithin(4), 50},
		{"full", logsWithin(8), 100},
		{"clamped", logsWithin(10), 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := domain.AdherenceRate(tc.logs, now); got != tc.want {
				t.Errorf("AdherenceRate() = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestAdherenceRate_Window(t *testing.T) {
	logs := []domain.InjectionLog{
		{ID: "edge", Date: now.AddDate(0, 0, -30)},
		{ID: "out", Date: now.AddDate(0, 0, -30).Add(-time.Second)},
		{ID: "old", Date: now.AddDate(0, 0, -45)},
	}
	// Only the boundary log counts: 1/8 -> 12.5 -> 13.
	if got := domain.AdherenceRate(logs, now); got != 13 {
		t.Errorf("AdherenceRate() = %d; want 13", got)
	}
}
