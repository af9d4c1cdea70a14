// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/danielhkuo/college-site/counter"
)

type stubCounter struct {
	n   int64
	err error
}

func (s *stubCounter) GetOrCreate(ctx context.Context, key string) (int64, error) {
	return s.n, s.err
}

func (s *stubCounter) Increment(ctx context.Context, key string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.n++
	return s.n, nil
}

func (s *stubCounter) Close() error { return nil }

func TestWrapCounterPassesThrough(t *testing.T) {
	store := WrapCounter(&stubCounter{n: 5})

	n, err := store.Increment(context.Background(), "site_visits")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("Expected 6, got %d", n)
	}

	n, err = store.GetOrCreate(context.Background(), "site_visits")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 6 {
		t.Errorf("Expected 6, got %d", n)
	}
}

func TestWrapCounterRecordsOutcome(t *testing.T) {
	failure := errors.Join(counter.ErrStoreUnavailable, errors.New("connection refused"))
	store := WrapCounter(&stubCounter{err: failure})

	_, err := store.GetOrCreate(context.Background(), "site_visits")
	if !errors.Is(err, counter.ErrStoreUnavailable) {
		t.Errorf("Expected ErrStoreUnavailable to pass through, got %v", err)
	}

	if n := testutil.CollectAndCount(CounterStoreLatency); n == 0 {
		t.Error("Expected a latency series to be recorded")
	}
}

func TestObserveOrigin(t *testing.T) {
	before := testutil.ToFloat64(OriginDecisions.WithLabelValues("false", "not allow-listed"))
	ObserveOrigin(false, "not allow-listed")
	after := testutil.ToFloat64(OriginDecisions.WithLabelValues("false", "not allow-listed"))

	if after != before+1 {
		t.Errorf("Expected decision counter to grow by 1, got %v -> %v", before, after)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	ObserveOrigin(true, "allow-listed")

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "college_site_origin_decisions_total") {
		t.Error("Expected origin decision metric in exposition output")
	}
}
