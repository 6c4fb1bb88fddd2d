// Package reminder fires a notification at each scheduled injection time.
package reminder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"dosetrack/internal/domain"
)

const minutesPerWeek = 7 * 24 * 60

// Source provides the state reminders are computed from.
type Source interface {
	Snapshot() domain.Snapshot
	Sites() []domain.InjectionSite
	Now() time.Time
}

// Reminder is one due injection.
type Reminder struct {
	Day  time.Weekday
	Time string
	Dose float64
	// Site is the recommended site, if the catalog is not empty.
	Site    domain.InjectionSite
	HasSite bool
}

// Spec is one cron entry derived from the schedule.
type Spec struct {
	Expr string
	Day  time.Weekday
	Time string
}

// Scheduler keeps one cron entry per distinct injection slot and re-plans
// them when the schedule changes.
type Scheduler struct {
	src    Source
	lead   time.Duration
	notify func(Reminder)
	cron   *cron.Cron

	mu      sync.Mutex
	entries []cron.EntryID
	current domain.ScheduleConfig
	planned bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLead fires reminders this long before the scheduled time.
func WithLead(d time.Duration) Option {
	return func(s *Scheduler) { s.lead = d }
}

// WithNotify replaces the default log notifier.
func WithNotify(fn func(Reminder)) Option {
	return func(s *Scheduler) { s.notify = fn }
}

// WithLocation sets the zone cron expressions are evaluated in.
func WithLocation(loc *time.Location) Option {
	return func(s *Scheduler) { s.cron = cron.New(cron.WithLocation(loc)) }
}

// New creates a stopped Scheduler.
func New(src Source, opts ...Option) *Scheduler {
	s := &Scheduler{
		src:    src,
		notify: logReminder,
		cron:   cron.New(cron.WithLocation(time.Local)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start plans the current schedule and starts the cron loop.
func (s *Scheduler) Start() error {
	if err := s.Plan(s.src.Snapshot().Schedule); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("reminder scheduler started (lead %s)", s.lead)
	return nil
}

// Stop stops the cron loop. The returned context is done once running
// reminders have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// OnChange re-plans after a state change. It matches the Tracker listener
// signature but plans from the source's current schedule, so a stale
// snapshot delivered late cannot replace a newer plan.
func (s *Scheduler) OnChange(domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.plan(s.src.Snapshot().Schedule); err != nil {
		log.Printf("reminder: plan: %v", err)
	}
}

// Plan replaces the cron entries with those for c. An unchanged schedule is
// left alone.
func (s *Scheduler) Plan(c domain.ScheduleConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan(c)
}

func (s *Scheduler) plan(c domain.ScheduleConfig) error {
	if s.planned && c == s.current {
		return nil
	}
	specs, err := Specs(c, s.lead)
	if err != nil {
		return err
	}

	for _, id := range s.entries {
		s.cron.Remove(id)
	}
	s.entries = s.entries[:0]
	for _, spec := range specs {
		id, err := s.cron.AddFunc(spec.Expr, func() { s.fire(spec) })
		if err != nil {
			return fmt.Errorf("add cron entry %q: %w", spec.Expr, err)
		}
		s.entries = append(s.entries, id)
	}
	s.current = c
	s.planned = true
	return nil
}

func (s *Scheduler) fire(spec Spec) {
	snap := s.src.Snapshot()
	r := Reminder{
		Day:  spec.Day,
		Time: spec.Time,
		Dose: snap.Schedule.DoseAmount,
	}
	r.Site, r.HasSite = domain.RecommendSite(s.src.Sites(), snap.InjectionLogs, s.src.Now())
	s.notify(r)
}

func logReminder(r Reminder) {
	site := "none"
	if r.HasSite {
		site = r.Site.Name
	}
	log.Printf("injection due: %s %s, dose: %g mg, site: %s", r.Day, r.Time, r.Dose, site)
}

// Specs converts the schedule into cron expressions of the form
// "MM HH * * DOW", shifted earlier by lead. Identical slots collapse into
// one entry.
func Specs(c domain.ScheduleConfig, lead time.Duration) ([]Spec, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	slots := []struct {
		day  domain.Weekday
		time string
	}{{c.Day1, c.Time1}, {c.Day2, c.Time2}}

	var specs []Spec
	seen := map[string]bool{}
	for _, slot := range slots {
		clock, err := time.Parse(domain.ClockLayout, slot.time)
		if err != nil {
			return nil, err
		}
		m := int(slot.day)*24*60 + clock.Hour()*60 + clock.Minute() - int(lead/time.Minute)
		m = ((m % minutesPerWeek) + minutesPerWeek) % minutesPerWeek

		expr := fmt.Sprintf("%d %d * * %d", m%60, (m/60)%24, m/(24*60))
		if seen[expr] {
			continue
		}
		seen[expr] = true
		specs = append(specs, Spec{Expr: expr, Day: time.Weekday(slot.day), Time: slot.time})
	}
	return specs, nil
}
