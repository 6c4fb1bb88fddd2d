// Package app holds the application services that own the in-memory
// snapshot and persist it after every mutation.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"dosetrack/internal/domain"
)

var (
	// ErrInvalidSchedule is returned when a schedule update fails validation.
	ErrInvalidSchedule = domain.ErrInvalidSchedule
	// ErrInvalidDate is returned for a date string that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")
	// ErrImportFormat is returned when an imported document cannot be parsed.
	ErrImportFormat = errors.New("invalid import document")
	// ErrInvalidInput is returned for non-finite calculator inputs.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidUnit is returned for a weight unit other than "kg" or "lb".
	ErrInvalidUnit = errors.New("unit must be \"kg\" or \"lb\"")
)

// Tracker owns the current snapshot. Mutations are serialized, saved through
// the Gateway, and only then become visible to readers and listeners.
type Tracker struct {
	gw    *Gateway
	now   func() time.Time
	newID func() string
	sites []domain.InjectionSite

	mu        sync.Mutex
	state     domain.Snapshot
	listeners []func(domain.Snapshot)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithIDs replaces the UUIDv7 generator used for new logs and entries.
func WithIDs(fn func() string) Option {
	return func(t *Tracker) { t.newID = fn }
}

// WithSites replaces the default site catalog.
func WithSites(sites []domain.InjectionSite) Option {
	return func(t *Tracker) { t.sites = append([]domain.InjectionSite(nil), sites...) }
}

// NewTracker loads the persisted snapshot and returns a Tracker serving it.
func NewTracker(ctx context.Context, gw *Gateway, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		gw:    gw,
		now:   time.Now,
		newID: newID,
		sites: domain.DefaultSites,
	}
	for _, opt := range opts {
		opt(t)
	}

	snap, _, err := gw.Load(ctx)
	if err != nil {
		return nil, err
	}
	t.state = snap
	return t, nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Sites returns the site catalog.
func (t *Tracker) Sites() []domain.InjectionSite {
	return append([]domain.InjectionSite(nil), t.sites...)
}

// Snapshot returns a copy of the current state.
func (t *Tracker) Snapshot() domain.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.Clone()
}

// OnChange registers fn to be called with a copy of the new state after
// every committed mutation.
func (t *Tracker) OnChange(fn func(domain.Snapshot)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// update applies fn to a copy of the state. When fn reports a change the
// copy is saved and then swapped in. A failed save leaves state untouched.
func (t *Tracker) update(ctx context.Context, fn func(s *domain.Snapshot) (bool, error)) (bool, error) {
	t.mu.Lock()
	next := t.state.Clone()
	changed, err := fn(&next)
	if err != nil || !changed {
		t.mu.Unlock()
		return false, err
	}
	if err := t.gw.Save(ctx, next); err != nil {
		t.mu.Unlock()
		return false, fmt.Errorf("commit: %w", err)
	}
	t.state = next
	listeners := slices.Clone(t.listeners)
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(next.Clone())
	}
	return true, nil
}
