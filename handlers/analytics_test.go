// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielhkuo/college-site/counter"
	"github.com/danielhkuo/college-site/models"
	"github.com/danielhkuo/college-site/testutil"
)

func TestGetVisits_CreatesCounter(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewAnalyticsHandler(counter.NewSQL(store.DB()), "site_visits")

	req := httptest.NewRequest("GET", "/api/analytics/visits", nil)
	w := httptest.NewRecorder()

	handler.GetVisits(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CountResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.Count != 0 {
		t.Errorf("Expected success with count 0, got %+v", resp)
	}
}

func TestTrackVisit(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewAnalyticsHandler(counter.NewSQL(store.DB()), "site_visits")

	for i := 1; i <= 6; i++ {
		req := httptest.NewRequest("POST", "/api/analytics/track-visit", nil)
		w := httptest.NewRecorder()

		handler.TrackVisit(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.CountResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Count != int64(i) {
			t.Errorf("Visit %d: expected count %d, got %d", i, i, resp.Count)
		}
	}

	req := httptest.NewRequest("GET", "/api/analytics/visits", nil)
	w := httptest.NewRecorder()
	handler.GetVisits(w, req)

	var resp models.CountResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 6 {
		t.Errorf("Expected count 6 after six visits, got %d", resp.Count)
	}
}

func TestTrackVisit_Concurrent(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewAnalyticsHandler(counter.NewSQL(store.DB()), "site_visits")

	const visitors = 20
	var wg sync.WaitGroup
	for i := 0; i < visitors; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("POST", "/api/analytics/track-visit", nil)
			w := httptest.NewRecorder()
			handler.TrackVisit(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
		}()
	}
	wg.Wait()

	req := httptest.NewRequest("GET", "/api/analytics/visits", nil)
	w := httptest.NewRecorder()
	handler.GetVisits(w, req)

	var resp models.CountResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != visitors {
		t.Errorf("Expected count %d, got %d", visitors, resp.Count)
	}
}

func TestAnalytics_StoreUnavailable(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewAnalyticsHandler(counter.NewSQL(store.DB()), "site_visits")
	store.Close()

	for _, tc := range []struct {
		name   string
		method string
		serve  http.HandlerFunc
	}{
		{"visits", "GET", handler.GetVisits},
		{"track", "POST", handler.TrackVisit},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/", nil)
			w := httptest.NewRecorder()

			tc.serve(w, req)

			testutil.AssertStatus(t, w, http.StatusServiceUnavailable)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Success {
				t.Error("Expected success=false")
			}
		})
	}
}
