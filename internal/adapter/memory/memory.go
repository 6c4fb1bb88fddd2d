// Package memory implements an in-memory state store for development and testing.
package memory

import (
	"context"
	"sync"

	"dosetrack/internal/domain"
)

// DB implements an in-memory key-value store.
type DB struct {
	mu   sync.Mutex
	data map[string][]byte
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{data: make(map[string][]byte)}
}

// Ensure interfaces are met.
var _ domain.StateStore = (*DB)(nil)

// Get returns a copy of the payload stored under key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	payload, ok := db.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

// Put stores a copy of payload under key, replacing any previous value.
func (db *DB) Put(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db.mu.Lock()
	defer db.mu.Unlock()

	db.data[key] = append([]byte(nil), payload...)
	return nil
}
