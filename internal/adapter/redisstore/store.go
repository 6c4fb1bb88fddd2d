// Package redisstore implements the state store on Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dosetrack/internal/domain"
)

// KeyPrefix namespaces state keys in a shared Redis database.
const KeyPrefix = "dosetrack:"

// Store keeps each payload as a plain string value without expiry.
type Store struct {
	client *redis.Client
}

var _ domain.StateStore = (*Store)(nil)

// Open connects to addr and pings it.
func Open(addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client), nil
}

// New wraps an existing client.
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Get returns the payload stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state: %w", err)
	}
	return payload, nil
}

// Put stores payload under key.
func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	if err := s.client.Set(ctx, KeyPrefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set state: %w", err)
	}
	return nil
}
