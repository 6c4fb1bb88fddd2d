package app

import (
	"context"
	"fmt"

	"dosetrack/internal/domain"
)

// AddWeight records a weight in pounds for day (YYYY-MM-DD, empty for
// today). A weight that is not positive is ignored and added is false.
func (t *Tracker) AddWeight(ctx context.Context, day string, weight float64) (entry domain.WeightEntry, added bool, err error) {
	if !validAmount(weight) {
		return domain.WeightEntry{}, false, nil
	}

	date := domain.NewDay(t.now())
	if day != "" {
		date, err = domain.ParseDay(day)
		if err != nil {
			return domain.WeightEntry{}, false, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
	}

	entry = domain.WeightEntry{ID: t.newID(), Date: date, Weight: weight}
	added, err = t.update(ctx, func(s *domain.Snapshot) (bool, error) {
		s.WeightEntries = append(s.WeightEntries, entry)
		domain.SortEntriesAsc(s.WeightEntries)
		return true, nil
	})
	if err != nil || !added {
		return domain.WeightEntry{}, false, err
	}
	return entry, true, nil
}

// Weights returns all entries, oldest first.
func (t *Tracker) Weights() []domain.WeightEntry {
	return t.Snapshot().WeightEntries
}

// DeleteWeight removes the entry with the given id. Unknown ids are a no-op.
func (t *Tracker) DeleteWeight(ctx context.Context, id string) (bool, error) {
	return t.update(ctx, func(s *domain.Snapshot) (bool, error) {
		var removed bool
		s.WeightEntries, removed = domain.RemoveEntry(s.WeightEntries, id)
		return removed, nil
	})
}
