package domain

import (
	"math"
	"sort"
	"time"
)

const day = 24 * time.Hour

// SiteStatus buckets a site by how long it has rested.
type SiteStatus string

// Rotation bands shown next to each site.
const (
	SiteNever   SiteStatus = "never"
	SiteRecent  SiteStatus = "recent"  // used less than a week ago
	SiteResting SiteStatus = "resting" // used one to two weeks ago
	SiteReady   SiteStatus = "ready"
)

// SiteUsage is one row of the rotation table.
type SiteUsage struct {
	Site      InjectionSite `json:"site"`
	Used      bool          `json:"used"`
	LastUsed  *time.Time    `json:"lastUsed,omitempty"`
	DaysSince int           `json:"daysSince"`
	Status    SiteStatus    `json:"status"`
}

// LastUse returns the most recent log date for siteID.
func LastUse(siteID string, logs []InjectionLog) (time.Time, bool) {
	var last time.Time
	found := false
	for _, l := range logs {
		if l.Site != siteID {
			continue
		}
		if !found || l.Date.After(last) {
			last = l.Date
			found = true
		}
	}
	return last, found
}

// DaysSinceLastUse is the number of started days since siteID was last used.
// Elapsed time is rounded up, so a use 30 hours ago counts as 2 days.
// used is false when no log references the site.
func DaysSinceLastUse(siteID string, logs []InjectionLog, now time.Time) (days int, used bool) {
	last, ok := LastUse(siteID, logs)
	if !ok {
		return 0, false
	}
	return elapsedDays(now, last, math.Ceil), true
}

// RankSites orders the catalog for rotation: never-used sites first, then by
// days since last use descending. Ties keep catalog order.
func RankSites(sites []InjectionSite, logs []InjectionLog, now time.Time) []SiteUsage {
	out := make([]SiteUsage, 0, len(sites))
	for _, s := range sites {
		u := SiteUsage{Site: s, Status: SiteNever}
		if last, ok := LastUse(s.ID, logs); ok {
			u.Used = true
			u.LastUsed = &last
			u.DaysSince = elapsedDays(now, last, math.Ceil)
			u.Status = statusFor(u.DaysSince)
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compareUsage(out[i], out[j]) < 0
	})
	return out
}

// RecommendSite returns the least recently used site. ok is false only when
// the catalog is empty.
func RecommendSite(sites []InjectionSite, logs []InjectionLog, now time.Time) (InjectionSite, bool) {
	ranked := RankSites(sites, logs, now)
	if len(ranked) == 0 {
		return InjectionSite{}, false
	}
	return ranked[0].Site, true
}

// compareUsage is negative when a should be recommended before b.
func compareUsage(a, b SiteUsage) int {
	switch {
	case !a.Used && !b.Used:
		return 0
	case !a.Used:
		return -1
	case !b.Used:
		return 1
	}
	return b.DaysSince - a.DaysSince
}

func statusFor(days int) SiteStatus {
	switch {
	case days < 7:
		return SiteRecent
	case days < 14:
		return SiteResting
	}
	return SiteReady
}

// elapsedDays is |now-then| in days, rounded with round.
func elapsedDays(now, then time.Time, round func(float64) float64) int {
	d := now.Sub(then)
	if d < 0 {
		d = -d
	}
	return int(round(float64(d) / float64(day)))
}
