package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"dosetrack/internal/domain"
)

// displayTimeLayout matches the wall-clock string older exports carry.
const displayTimeLayout = "3:04:05 PM"

// LogInjection records a dose at siteID on day (YYYY-MM-DD, empty for today)
// at the current time of day. When the site is not in the catalog or dose is
// not positive nothing is recorded and logged is false.
func (t *Tracker) LogInjection(ctx context.Context, day, siteID string, dose float64) (entry domain.InjectionLog, logged bool, err error) {
	if _, ok := domain.FindSite(t.sites, siteID); !ok || !validAmount(dose) {
		return domain.InjectionLog{}, false, nil
	}

	now := t.now()
	date := now
	if day != "" {
		d, err := domain.ParseDay(day)
		if err != nil {
			return domain.InjectionLog{}, false, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		date = time.Date(d.Year(), d.Month(), d.Day(), now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	}

	entry = domain.InjectionLog{
		ID:   t.newID(),
		Date: date.UTC(),
		Site: siteID,
		Dose: dose,
		Time: now.Format(displayTimeLayout),
	}
	logged, err = t.update(ctx, func(s *domain.Snapshot) (bool, error) {
		s.InjectionLogs = append([]domain.InjectionLog{entry}, s.InjectionLogs...)
		domain.SortLogsDesc(s.InjectionLogs)
		return true, nil
	})
	if err != nil || !logged {
		return domain.InjectionLog{}, false, err
	}
	return entry, true, nil
}

// Injections returns all logs, most recent first.
func (t *Tracker) Injections() []domain.InjectionLog {
	return t.Snapshot().InjectionLogs
}

// DeleteInjection removes the log with the given id. Unknown ids are a no-op.
func (t *Tracker) DeleteInjection(ctx context.Context, id string) (bool, error) {
	return t.update(ctx, func(s *domain.Snapshot) (bool, error) {
		var removed bool
		s.InjectionLogs, removed = domain.RemoveLog(s.InjectionLogs, id)
		return removed, nil
	})
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
