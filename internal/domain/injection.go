// Package domain contains the core entities and the pure computations that
// derive dashboard values from them.
package domain

import (
	"sort"
	"time"
)

// InjectionLog is a single logged injection. Logs are never mutated after
// creation; they are only added or deleted by ID.
type InjectionLog struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	Site string    `json:"site"`
	Dose float64   `json:"dose"`
	// Time is the wall-clock display string recorded at logging time.
	Time string `json:"time,omitempty"`
}

// InjectionSite is an entry of the static site catalog.
type InjectionSite struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Area string `json:"area"`
}

// DefaultSites is the rotation catalog: the four abdominal quadrants.
// Catalog order is significant, it breaks ties when ranking.
var DefaultSites = []InjectionSite{
	{ID: "abdomen-upper-right", Name: "Abdomen Upper Right", Area: "abdomen"},
	{ID: "abdomen-lower-right", Name: "Abdomen Lower Right", Area: "abdomen"},
	{ID: "abdomen-upper-left", Name: "Abdomen Upper Left", Area: "abdomen"},
	{ID: "abdomen-lower-left", Name: "Abdomen Lower Left", Area: "abdomen"},
}

// FindSite returns the catalog entry with the given id.
func FindSite(sites []InjectionSite, id string) (InjectionSite, bool) {
	for _, s := range sites {
		if s.ID == id {
			return s, true
		}
	}
	return InjectionSite{}, false
}

// SortLogsDesc sorts logs in place, most recent first.
func SortLogsDesc(logs []InjectionLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
}

// RemoveLog returns a copy of logs without the entry with the given id, and
// whether such an entry existed.
func RemoveLog(logs []InjectionLog, id string) ([]InjectionLog, bool) {
	out := make([]InjectionLog, 0, len(logs))
	found := false
	for _, l := range logs {
		if l.ID == id {
			found = true
			continue
		}
		out = append(out, l)
	}
	return out, found
}
