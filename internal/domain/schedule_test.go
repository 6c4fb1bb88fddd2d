package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dosetrack/internal/domain"
)

func at(day int) time.Time {
	return time.Date(2026, 3, day, 8, 30, 0, 0, time.UTC)
}

func TestNextInjectionDate(t *testing.T) {
	sched := domain.DefaultSchedule() // monday + thursday

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"sunday goes to monday", at(15), at(16)},
		{"monday goes to thursday", at(16), at(19)},
		{"wednesday goes to thursday", at(18), at(19)},
		{"thursday wraps to monday", at(19), at(23)},
		{"friday wraps to monday", at(20), at(23)},
		{"saturday wraps to monday", at(21), at(23)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.NextInjectionDate(sched, tc.now)
			if !got.Equal(tc.want) {
				t.Errorf("NextInjectionDate(%s) = %s; want %s",
					tc.now.Weekday(), got.Format(time.RFC3339), tc.want.Format(time.RFC3339))
			}
		})
	}
}

func TestNextInjectionDate_SameDayTwice(t *testing.T) {
	sched := domain.ScheduleConfig{
		Day1: domain.Weekday(time.Wednesday), Day2: domain.Weekday(time.Wednesday),
		Time1: "09:00", Time2: "21:00",
	}
	if got := domain.NextInjectionDate(sched, at(16)); !got.Equal(at(18)) {
		t.Errorf("expected wednesday, got %s", got)
	}
	if got := domain.NextInjectionDate(sched, at(18)); !got.Equal(at(25)) {
		t.Errorf("expected next wednesday, got %s", got)
	}
}

func TestNextInjectionDate_ReversedDays(t *testing.T) {
	reversed := domain.ScheduleConfig{
		Day1: domain.Weekday(time.Friday), Day2: domain.Weekday(time.Monday),
		Time1: "18:00", Time2: "07:00",
	}
	// Saturday: the raw projection skips the upcoming Monday.
	if got := domain.NextInjectionDate(reversed, at(21)); !got.Equal(at(27)) {
		t.Errorf("raw projection = %s; want %s", got, at(27))
	}
	canon := reversed.Canonical()
	if got := domain.NextInjectionDate(canon, at(21)); !got.Equal(at(23)) {
		t.Errorf("canonical projection = %s; want %s", got, at(23))
	}
	if canon.Time1 != "07:00" || canon.Time2 != "18:00" {
		t.Errorf("expected times to follow their days, got %q/%q", canon.Time1, canon.Time2)
	}
}

func TestScheduleConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ScheduleConfig)
		wantErr bool
	}{
		{"default", func(*domain.ScheduleConfig) {}, false},
		{"zero dose", func(c *domain.ScheduleConfig) { c.DoseAmount = 0 }, false},
		{"negative dose", func(c *domain.ScheduleConfig) { c.DoseAmount = -1 }, true},
		{"bad time", func(c *domain.ScheduleConfig) { c.Time2 = "25:00" }, true},
		{"empty time", func(c *domain.ScheduleConfig) { c.Time1 = "" }, true},
		{"weekday out of range", func(c *domain.ScheduleConfig) { c.Day1 = 9 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := domain.DefaultSchedule()
			tc.mutate(&c)
			err := c.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v; wantErr %v", err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidSchedule) {
				t.Fatalf("expected ErrInvalidSchedule, got %v", err)
			}
		})
	}
}

func TestScheduleConfig_JSON(t *testing.T) {
	var c domain.ScheduleConfig
	raw := `{"day1":"Tuesday","day2":"saturday","time1":"08:15","time2":"20:00","doseAmount":1.5}`
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if time.Weekday(c.Day1) != time.Tuesday || time.Weekday(c.Day2) != time.Saturday {
		t.Fatalf("unexpected days: %v %v", c.Day1, c.Day2)
	}
	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"day1":"tuesday","day2":"saturday","time1":"08:15","time2":"20:00","doseAmount":1.5}`
	if string(b) != want {
		t.Errorf("got %s; want %s", b, want)
	}

	if err := json.Unmarshal([]byte(`{"day1":"someday"}`), &c); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}

func TestScheduleConfig_JSONMissingWeekday(t *testing.T) {
	for _, raw := range []string{
		`{"day2":"friday","time1":"08:00","time2":"08:00","doseAmount":2}`,
		`{"day1":"monday","time1":"08:00","time2":"08:00","doseAmount":2}`,
		`{"time1":"08:00","time2":"08:00","doseAmount":2}`,
	} {
		var c domain.ScheduleConfig
		err := json.Unmarshal([]byte(raw), &c)
		if !errors.Is(err, domain.ErrInvalidSchedule) {
			t.Errorf("Unmarshal(%s) error = %v; want ErrInvalidSchedule", raw, err)
		}
	}

	var c domain.ScheduleConfig
	if err := json.Unmarshal([]byte(`{"day1":"sunday","day2":"sunday","time1":"08:00","time2":"18:00"}`), &c); err != nil {
		t.Fatalf("explicit sunday rejected: %v", err)
	}
	if time.Weekday(c.Day1) != time.Sunday || c.Time2 != "18:00" {
		t.Errorf("unexpected schedule %+v", c)
	}
}

func TestScheduleConfig_CanonicalSameDay(t *testing.T) {
	c := domain.ScheduleConfig{
		Day1: domain.Weekday(time.Wednesday), Day2: domain.Weekday(time.Wednesday),
		Time1: "21:00", Time2: "9:30",
	}.Canonical()
	if c.Time1 != "9:30" || c.Time2 != "21:00" {
		t.Errorf("expected earlier time first, got %q/%q", c.Time1, c.Time2)
	}
	if got := c.TimeFor(time.Wednesday); got != "9:30" {
		t.Errorf("TimeFor(wednesday) = %q; want 9:30", got)
	}

	same := domain.ScheduleConfig{
		Day1: domain.Weekday(time.Monday), Day2: domain.Weekday(time.Monday),
		Time1: "08:00", Time2: "08:00",
	}
	if same.Canonical() != same {
		t.Errorf("equal slots must be left alone, got %+v", same.Canonical())
	}
}

func TestScheduleConfig_TimeForAndWeeklyDose(t *testing.T) {
	c := domain.ScheduleConfig{
		Day1: domain.Weekday(time.Monday), Day2: domain.Weekday(time.Thursday),
		Time1: "09:00", Time2: "19:30", DoseAmount: 2.5,
	}
	if got := c.TimeFor(time.Thursday); got != "19:30" {
		t.Errorf("TimeFor(thursday) = %q", got)
	}
	if got := c.TimeFor(time.Sunday); got != "" {
		t.Errorf("TimeFor(sunday) = %q; want empty", got)
	}
	if c.WeeklyDose() != 5 {
		t.Errorf("WeeklyDose() = %v; want 5", c.WeeklyDose())
	}
}
