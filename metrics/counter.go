// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"context"
	"time"

	"github.com/danielhkuo/college-site/counter"
)

// WrapCounter returns a counter.Store that records CounterStoreLatency for
// every operation.
func WrapCounter(inner counter.Store) counter.Store {
	return &counterStore{inner: inner}
}

type counterStore struct {
	inner counter.Store
}

func observe(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	CounterStoreLatency.WithLabelValues(op, outcome).Observe(time.Since(start).Seconds())
}

func (m *counterStore) GetOrCreate(ctx context.Context, key string) (n int64, err error) {
	defer func(start time.Time) { observe("get_or_create", start, err) }(time.Now())
	return m.inner.GetOrCreate(ctx, key)
}

func (m *counterStore) Increment(ctx context.Context, key string) (n int64, err error) {
	defer func(start time.Time) { observe("increment", start, err) }(time.Now())
	return m.inner.Increment(ctx, key)
}

func (m *counterStore) Close() error {
	return m.inner.Close()
}
