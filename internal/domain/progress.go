package domain

import (
	"math"
	"time"
)

const (
	// AdherenceWindowDays is the trailing window counted by AdherenceRate.
	AdherenceWindowDays = 30
	// ExpectedDosesPerWindow is two doses a week over roughly four weeks.
	ExpectedDosesPerWindow = 8
)

// DaysSinceLastInjection is the number of whole days elapsed since the most
// recent log, or 0 when there are none.
func DaysSinceLastInjection(logs []InjectionLog, now time.Time) int {
	if len(logs) == 0 {
		return 0
	}
	last := logs[0].Date
	for _, l := range logs[1:] {
		if l.Date.After(last) {
			last = l.Date
		}
	}
	return elapsedDays(now, last, math.Floor)
}

// TotalWeightLost is the earliest weight minus the latest weight. A negative
// value means weight was gained. Fewer than two entries yield 0.
func TotalWeightLost(entries []WeightEntry) float64 {
	if len(entries) < 2 {
		return 0
	}
	sorted := make([]WeightEntry, len(entries))
	copy(sorted, entries)
	SortEntriesAsc(sorted)
	return sorted[0].Weight - sorted[len(sorted)-1].Weight
}

// AdherenceRate is the percentage of expected doses logged in the trailing
// window ending at now, capped at 100.
func AdherenceRate(logs []InjectionLog, now time.Time) int {
	since := now.AddDate(0, 0, -AdherenceWindowDays)
	n := 0
	for _, l := range logs {
		if !l.Date.Before(since) {
			n++
		}
	}
	rate := int(math.Round(float64(n) / ExpectedDosesPerWindow * 100))
	if rate > 100 {
		return 100
	}
	return rate
}
