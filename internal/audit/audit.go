// Package audit provides an optional, best-effort log of calculation
// requests. The scoring core stays stateless; recording happens at the HTTP
// boundary and a failed insert never fails the request it describes.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry describes one calculation request outcome.
type Entry struct {
	ScoreID  string
	Params   map[string]any
	Outcome  string // ok | validation_error | calculation_error
	Duration time.Duration
}

// Store records calculation entries and reports its own health.
type Store interface {
	Record(ctx context.Context, e Entry) error
	Ping(ctx context.Context) error
	Close()
}

// PGStore persists entries to PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// Open connects a PGStore and verifies connectivity.
func Open(ctx context.Context, url string) (*PGStore, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return &PGStore{pool: pool}, nil
}

func (s *PGStore) Record(ctx context.Context, e Entry) error {
	params, err := json.Marshal(e.Params)
	if err != nil {
		return fmt.Errorf("marshal params: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO calculation_log (score_id, params, outcome, duration_us, recorded_at)
		 VALUES ($1, $2, $3, $4, now())`,
		e.ScoreID, params, e.Outcome, e.Duration.Microseconds())
	if err != nil {
		return fmt.Errorf("insert calculation_log: %w", err)
	}
	return nil
}

func (s *PGStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PGStore) Close() {
	s.pool.Close()
}

// NopStore is used when auditing is disabled.
type NopStore struct{}

func (NopStore) Record(context.Context, Entry) error { return nil }
func (NopStore) Ping(context.Context) error          { return nil }
func (NopStore) Close()                              {}
