// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/college-site/counter"
	"github.com/danielhkuo/college-site/cors"
	"github.com/danielhkuo/college-site/models"
	"github.com/danielhkuo/college-site/testutil"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	return NewRouter(store, counter.NewSQL(store.DB()), &testutil.FakeNotifier{}, cfg)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "Backend API is healthy and running!"
	if !strings.Contains(w.Body.String(), expected) {
		t.Errorf("Expected body to contain '%s', got '%s'", expected, w.Body.String())
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("GET", "/does-not-exist", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestMux(t)

	// Test that routes respond (handler is invoked)
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/api"},
		{"GET", "/metrics"},

		{"POST", "/api/send-enquiry"},
		{"GET", "/api/enquiries"},
		{"GET", "/api/enquiries/test-id"},

		{"POST", "/api/submit-application"},
		{"GET", "/api/applications"},
		{"GET", "/api/applications/test-id"},

		{"GET", "/api/analytics/visits"},
		{"POST", "/api/analytics/track-visit"},

		{"POST", "/api/admin/login"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			// Method mismatches yield 405, missing routes 404 with a text body
			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s not registered for method", tc.method, tc.path)
			}
			if w.Code == http.StatusNotFound && !strings.Contains(w.Header().Get("Content-Type"), "application/json") {
				t.Errorf("Route %s %s not registered", tc.method, tc.path)
			}
		})
	}
}

func TestWrongMethodRejected(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest("DELETE", "/api/analytics/visits", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", w.Code)
	}
}

func TestFilteredVisitFlow(t *testing.T) {
	filter, err := cors.NewFilter(cors.Policy{
		AllowedOrigins:   []string{"https://example.com"},
		AllowCredentials: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	h := filter.Handler(newTestMux(t))

	// Allowed origin, with trailing slash
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest("POST", "/api/analytics/track-visit", nil)
		req.Header.Set("Origin", "https://example.com/")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com/" {
			t.Errorf("Expected Access-Control-Allow-Origin 'https://example.com/', got '%s'", got)
		}
	}

	// Rejected origin never reaches the counter
	req := httptest.NewRequest("POST", "/api/analytics/track-visit", nil)
	req.Header.Set("Origin", "https://evil.com")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// Preflight terminates in the filter
	req = httptest.NewRequest("OPTIONS", "/api/analytics/track-visit", nil)
	req.Header.Set("Origin", "https://example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	req = httptest.NewRequest("POST", "/api/analytics/track-visit", nil)
	req.Header.Set("Origin", "https://example.com")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var resp models.CountResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Count != 6 {
		t.Errorf("Expected count 6 (rejected request not counted), got %d", resp.Count)
	}
}

func TestFilteredEnquiryFlow(t *testing.T) {
	filter, err := cors.NewFilter(cors.Policy{AllowedOrigins: []string{"http://localhost:3000"}})
	if err != nil {
		t.Fatal(err)
	}
	h := filter.Handler(newTestMux(t))

	body := models.EnquiryRequest{Name: "A", Email: "a@example.com", Subject: "S", Message: "M"}
	req := testutil.MakeRequest("POST", "/api/send-enquiry", body, map[string]string{"Origin": "http://localhost:3000"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = testutil.MakeRequest("GET", "/api/enquiries", nil, nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var list models.ListResponse[models.Enquiry]
	testutil.AssertJSON(t, w, &list)
	if list.Count != 1 {
		t.Errorf("Expected 1 enquiry, got %d", list.Count)
	}
}
