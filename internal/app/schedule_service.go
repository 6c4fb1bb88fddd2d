package app

import (
	"context"
	"fmt"

	"dosetrack/internal/domain"
)

// Schedule returns the active schedule.
func (t *Tracker) Schedule() domain.ScheduleConfig {
	return t.Snapshot().Schedule
}

// SetSchedule replaces the schedule. The stored value is canonical, with
// its days in ascending weekday order.
func (t *Tracker) SetSchedule(ctx context.Context, c domain.ScheduleConfig) (domain.ScheduleConfig, error) {
	if err := c.Validate(); err != nil {
		return domain.ScheduleConfig{}, err
	}
	c = c.Canonical()
	if _, err := t.update(ctx, func(s *domain.Snapshot) (bool, error) {
		s.Schedule = c
		return true, nil
	}); err != nil {
		return domain.ScheduleConfig{}, fmt.Errorf("set schedule: %w", err)
	}
	return c, nil
}
