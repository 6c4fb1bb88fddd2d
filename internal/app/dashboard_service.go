package app

import (
	"time"

	"dosetrack/internal/domain"
)

// Dashboard is the summary shown on the overview screen.
type Dashboard struct {
	NextInjection          time.Time             `json:"nextInjection"`
	NextInjectionDay       string                `json:"nextInjectionDay"`
	NextInjectionTime      string                `json:"nextInjectionTime"`
	DoseAmount             float64               `json:"doseAmount"`
	WeeklyDose             float64               `json:"weeklyDose"`
	DaysSinceLastInjection int                   `json:"daysSinceLastInjection"`
	InjectionCount         int                   `json:"injectionCount"`
	AdherenceRate          int                   `json:"adherenceRate"`
	TotalWeightLost        float64               `json:"totalWeightLost"`
	CurrentWeight          *float64              `json:"currentWeight"`
	RecommendedSite        *domain.InjectionSite `json:"recommendedSite"`
}

// SiteRotation is the ranked site catalog with the recommendation.
type SiteRotation struct {
	Sites       []domain.SiteUsage    `json:"sites"`
	Recommended *domain.InjectionSite `json:"recommended"`
}

// Dashboard derives the overview values from the current state.
func (t *Tracker) Dashboard() Dashboard {
	snap := t.Snapshot()
	now := t.now()

	next := domain.NextInjectionDate(snap.Schedule, now)
	d := Dashboard{
		NextInjection:          next,
		NextInjectionDay:       domain.NewDay(next).String(),
		NextInjectionTime:      snap.Schedule.TimeFor(next.Weekday()),
		DoseAmount:             snap.Schedule.DoseAmount,
		WeeklyDose:             snap.Schedule.WeeklyDose(),
		DaysSinceLastInjection: domain.DaysSinceLastInjection(snap.InjectionLogs, now),
		InjectionCount:         len(snap.InjectionLogs),
		AdherenceRate:          domain.AdherenceRate(snap.InjectionLogs, now),
		TotalWeightLost:        domain.TotalWeightLost(snap.WeightEntries),
	}
	if n := len(snap.WeightEntries); n > 0 {
		w := snap.WeightEntries[n-1].Weight
		d.CurrentWeight = &w
	}
	if site, ok := domain.RecommendSite(t.sites, snap.InjectionLogs, now); ok {
		d.RecommendedSite = &site
	}
	return d
}

// SiteRotation ranks the catalog by time since last use.
func (t *Tracker) SiteRotation() SiteRotation {
	snap := t.Snapshot()
	now := t.now()

	r := SiteRotation{Sites: domain.RankSites(t.sites, snap.InjectionLogs, now)}
	if len(r.Sites) > 0 {
		site := r.Sites[0].Site
		r.Recommended = &site
	}
	return r
}
