package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidSchedule is returned by ScheduleConfig.Validate.
var ErrInvalidSchedule = errors.New("invalid schedule")

// Weekday is a time.Weekday that encodes as its lowercase English name.
type Weekday time.Weekday

var weekdayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ParseWeekday parses a weekday name, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		if name == s {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

func (w Weekday) String() string {
	if w < 0 || int(w) >= len(weekdayNames) {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// MarshalText implements encoding.TextMarshaler.
func (w Weekday) MarshalText() ([]byte, error) {
	if w < 0 || int(w) >= len(weekdayNames) {
		return nil, fmt.Errorf("weekday out of range: %d", int(w))
	}
	return []byte(weekdayNames[w]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Weekday) UnmarshalText(b []byte) error {
	parsed, err := ParseWeekday(string(b))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// ClockLayout is the 24-hour HH:MM layout of configured injection times.
const ClockLayout = "15:04"

// ScheduleConfig is the twice-weekly injection schedule. Time1 belongs to
// Day1 and Time2 to Day2.
type ScheduleConfig struct {
	Day1       Weekday `json:"day1"`
	Day2       Weekday `json:"day2"`
	Time1      string  `json:"time1"`
	Time2      string  `json:"time2"`
	DoseAmount float64 `json:"doseAmount"`
}

// DefaultSchedule is Monday and Thursday at 09:00, 2 mg.
func DefaultSchedule() ScheduleConfig {
	return ScheduleConfig{
		Day1:       Weekday(time.Monday),
		Day2:       Weekday(time.Thursday),
		Time1:      "09:00",
		Time2:      "09:00",
		DoseAmount: 2,
	}
}

// Validate checks that every field holds a usable value.
func (c ScheduleConfig) Validate() error {
	for _, d := range []Weekday{c.Day1, c.Day2} {
		if d < 0 || int(d) >= len(weekdayNames) {
			return fmt.Errorf("%w: weekday out of range", ErrInvalidSchedule)
		}
	}
	for _, t := range []string{c.Time1, c.Time2} {
		if _, err := time.Parse(ClockLayout, t); err != nil {
			return fmt.Errorf("%w: time %q is not HH:MM", ErrInvalidSchedule, t)
		}
	}
	if c.DoseAmount < 0 || math.IsNaN(c.DoseAmount) || math.IsInf(c.DoseAmount, 0) {
		return fmt.Errorf("%w: dose amount must be >= 0", ErrInvalidSchedule)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Both weekdays must be present;
// a missing one would otherwise decode as Sunday.
func (c *ScheduleConfig) UnmarshalJSON(b []byte) error {
	type plain ScheduleConfig
	var raw struct {
		plain
		Day1 *Weekday `json:"day1"`
		Day2 *Weekday `json:"day2"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Day1 == nil || raw.Day2 == nil {
		return fmt.Errorf("%w: day1 and day2 are required", ErrInvalidSchedule)
	}
	*c = ScheduleConfig(raw.plain)
	c.Day1, c.Day2 = *raw.Day1, *raw.Day2
	return nil
}

// Canonical returns the schedule with its (day, time) pairs ordered by
// ascending weekday index, and by time of day when both days are equal.
// NextInjectionDate is only correct for canonical schedules.
func (c ScheduleConfig) Canonical() ScheduleConfig {
	if c.Day1 > c.Day2 || (c.Day1 == c.Day2 && clockBefore(c.Time2, c.Time1)) {
		c.Day1, c.Day2 = c.Day2, c.Day1
		c.Time1, c.Time2 = c.Time2, c.Time1
	}
	return c
}

// clockBefore reports whether a is earlier than b. Unparsable times never
// compare as earlier.
func clockBefore(a, b string) bool {
	ta, errA := time.Parse(ClockLayout, a)
	tb, errB := time.Parse(ClockLayout, b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Before(tb)
}

// TimeFor returns the configured time for day, or "" when day is not an
// injection day.
func (c ScheduleConfig) TimeFor(day time.Weekday) string {
	switch Weekday(day) {
	case c.Day1:
		return c.Time1
	case c.Day2:
		return c.Time2
	}
	return ""
}

// WeeklyDose is the total dose over one week of the schedule.
func (c ScheduleConfig) WeeklyDose() float64 {
	return c.DoseAmount * 2
}

// NextInjectionDate projects the next injection day from now.
//
// The projection assumes Day1 <= Day2 by weekday index; for a reversed
// configuration the second branch can pick the wrong day. Callers that
// accept user input should store Canonical() schedules.
func NextInjectionDate(c ScheduleConfig, now time.Time) time.Time {
	cur := int(now.Weekday())
	d1, d2 := int(c.Day1), int(c.Day2)

	var offset int
	switch {
	case cur < d1:
		offset = d1 - cur
	case cur < d2:
		offset = d2 - cur
	default:
		offset = 7 - cur + d1
	}
	return now.AddDate(0, 0, offset)
}
