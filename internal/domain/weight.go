package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DayLayout is the wire format of a calendar date.
const DayLayout = "2006-01-02"

// Day is a calendar date without a time component. It marshals as
// YYYY-MM-DD and is always held at midnight UTC so that comparisons do not
// depend on the local zone.
type Day struct {
	time.Time
}

// NewDay truncates t to its calendar date in t's own location.
func NewDay(t time.Time) Day {
	return Day{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDay parses a YYYY-MM-DD string.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Day{t}, nil
}

func (d Day) String() string {
	return d.Format(DayLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// WeightEntry represents a single weight measurement in pounds.
type WeightEntry struct {
	ID     string  `json:"id"`
	Date   Day     `json:"date"`
	Weight float64 `json:"weight"`
}

// SortEntriesAsc sorts entries in place by date, oldest first. Entries on
// the same date keep their relative order.
func SortEntriesAsc(entries []WeightEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date.Time)
	})
}

// RemoveEntry returns a copy of entries without the entry with the given id,
// and whether such an entry existed.
func RemoveEntry(entries []WeightEntry, id string) ([]WeightEntry, bool) {
	out := make([]WeightEntry, 0, len(entries))
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}
