// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package counter

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrStoreUnavailable = errors.New("counter store unavailable")
	ErrInvalidKey       = errors.New("counter key is required")
)

// Store maintains named, monotonically increasing counters. Implementations
// must push atomicity into the backend: no read-then-write sequences, no
// in-process locks, no retries.
type Store interface {
	// GetOrCreate returns the current count for key, creating the record
	// with count 0 if it does not exist.
	GetOrCreate(ctx context.Context, key string) (int64, error)

	// Increment adds 1 to the counter for key, creating it with count 1 if
	// it does not exist, and returns the post-increment value.
	Increment(ctx context.Context, key string) (int64, error)

	// Close releases the underlying connection.
	Close() error
}

func checkKey(key string) error {
	if key == "" {
		return ErrInvalidKey
	}
	return nil
}

func unavailable(op, key string, err error) error {
	return fmt.Errorf("%w: %s %q: %w", ErrStoreUnavailable, op, key, err)
}
