package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a StateStore when the key has never been written.
var ErrNotFound = errors.New("not found")

// Snapshot is the complete persisted application state.
type Snapshot struct {
	InjectionLogs   []InjectionLog   `json:"injectionLogs"`
	WeightEntries   []WeightEntry    `json:"weightEntries"`
	Schedule        ScheduleConfig   `json:"schedule"`
	LastCalculation CalculatorInputs `json:"lastCalculation"`
}

// DefaultSnapshot is the state of a fresh install.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		InjectionLogs:   []InjectionLog{},
		WeightEntries:   []WeightEntry{},
		Schedule:        DefaultSchedule(),
		LastCalculation: DefaultCalculatorInputs(),
	}
}

// Clone returns a deep copy, so the result can be handed out while the
// original keeps being mutated.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.InjectionLogs = append([]InjectionLog(nil), s.InjectionLogs...)
	out.WeightEntries = append([]WeightEntry(nil), s.WeightEntries...)
	if out.InjectionLogs == nil {
		out.InjectionLogs = []InjectionLog{}
	}
	if out.WeightEntries == nil {
		out.WeightEntries = []WeightEntry{}
	}
	return out
}

// StateStore is the port for durable key-value persistence of encoded
// snapshots.
type StateStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, payload []byte) error
}
