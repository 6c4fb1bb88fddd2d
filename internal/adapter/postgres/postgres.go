// Package postgres implements the state store on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"dosetrack/internal/domain"
)

// DB wraps a *sql.DB and implements domain.StateStore.
type DB struct {
	sql *sql.DB
}

var _ domain.StateStore = (*DB)(nil)

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := New(s)
	if err := d.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// New wraps an already open connection pool.
func New(s *sql.DB) *DB {
	return &DB{sql: s}
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Migrate creates the state table if it does not exist.
func (d *DB) Migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS app_state (key TEXT PRIMARY KEY, payload JSONB NOT NULL, updated_at TIMESTAMPTZ NOT NULL);",
	}
	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Get returns the payload stored under key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var payload []byte
	err := d.sql.QueryRowContext(ctx, "SELECT payload FROM app_state WHERE key=$1;", key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return payload, nil
}

// Put upserts payload under key.
func (d *DB) Put(ctx context.Context, key string, payload []byte) error {
	_, err := d.sql.ExecContext(ctx,
		"INSERT INTO app_state(key, payload, updated_at) VALUES($1, $2, $3) ON CONFLICT (key) DO UPDATE SET payload=EXCLUDED.payload, updated_at=EXCLUDED.updated_at;",
		key, string(payload), time.Now().UTC(),
	)
	return err
}
