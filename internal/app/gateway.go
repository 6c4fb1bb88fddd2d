package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"dosetrack/internal/codec"
	"dosetrack/internal/domain"
)

// StateKey is the store key the snapshot document is kept under.
const StateKey = "retatrutideData"

// Gateway loads and saves the snapshot document through a StateStore.
type Gateway struct {
	store domain.StateStore
}

// NewGateway creates a Gateway backed by the given store.
func NewGateway(store domain.StateStore) *Gateway {
	return &Gateway{store: store}
}

// Load reads the persisted snapshot. found is false when nothing has been
// saved yet. Missing or malformed fields fall back to their defaults, and a
// payload that cannot be parsed at all yields the default snapshot.
func (g *Gateway) Load(ctx context.Context) (domain.Snapshot, bool, error) {
	payload, err := g.store.Get(ctx, StateKey)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultSnapshot(), false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}

	snap, defaulted, err := codec.Decode(payload, domain.DefaultSnapshot())
	if err != nil {
		log.Printf("load snapshot: %v, starting from defaults", err)
		return domain.DefaultSnapshot(), true, nil
	}
	if len(defaulted) > 0 {
		log.Printf("load snapshot: defaulted fields: %s", strings.Join(defaulted, ", "))
	}
	return snap, true, nil
}

// Save encodes and writes the snapshot.
func (g *Gateway) Save(ctx context.Context, s domain.Snapshot) error {
	payload, err := codec.Encode(s)
	if err != nil {
		return err
	}
	if err := g.store.Put(ctx, StateKey, payload); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
