// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package counter

import (
	"context"
	"database/sql"
)

// Both statements are single upserts, so the database serializes concurrent
// callers on the counter_key primary key. They run unchanged on Postgres and
// SQLite (3.35+ for RETURNING).
const (
	getOrCreateSQL = `
		INSERT INTO visit_counter (counter_key, count)
		VALUES ($1, 0)
		ON CONFLICT (counter_key) DO UPDATE SET count = visit_counter.count
		RETURNING count`

	incrementSQL = `
		INSERT INTO visit_counter (counter_key, count, updated_at)
		VALUES ($1, 1, CURRENT_TIMESTAMP)
		ON CONFLICT (counter_key) DO UPDATE SET
			count = visit_counter.count + 1,
			updated_at = CURRENT_TIMESTAMP
		RETURNING count`
)

// SQLStore keeps counters in the visit_counter table.
type SQLStore struct {
	db *sql.DB
}

var _ Store = (*SQLStore)(nil)

// NewSQL returns a Store backed by db. The visit_counter table must exist
// (see db.CreateSchema). The caller owns db; Close is a no-op.
func NewSQL(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) GetOrCreate(ctx context.Context, key string) (int64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	var count int64
	if err := s.db.QueryRowContext(ctx, getOrCreateSQL, key).Scan(&count); err != nil {
		return 0, unavailable("get or create", key, err)
	}
	return count, nil
}

func (s *SQLStore) Increment(ctx context.Context, key string) (int64, error) {
	if err := checkKey(key); err != nil {
		return 0, err
	}
	var count int64
	if err := s.db.QueryRowContext(ctx, incrementSQL, key).Scan(&count); err != nil {
		return 0, unavailable("increment", key, err)
	}
	return count, nil
}

func (s *SQLStore) Close() error { return nil }
