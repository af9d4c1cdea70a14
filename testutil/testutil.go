// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/college-site/cliparse"
	"github.com/danielhkuo/college-site/db"
	"github.com/danielhkuo/college-site/models"
)

// SetupTestDB opens a fresh SQLite database with the full schema.
// The file lives in t.TempDir() and is closed on cleanup.
func SetupTestDB(t *testing.T) *db.SQLStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "college.db")
	conn, err := db.OpenSQL(context.Background(), db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	store := db.NewSQLStore(conn)
	t.Cleanup(func() { store.Close() })

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		DatabaseType:     db.TypeSQLite,
		DatabaseURL:      "college-test.db",
		MongoDatabase:    "college",
		VisitCounterKey:  "site_visits",
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		SMTPHost:         "smtp.example.com",
		SMTPPort:         587,
		AdminUsername:    "admin",
		LogFormat:        "text",
	}
}

// CreateTestEnquiry stores an enquiry and returns it with its ID set
func CreateTestEnquiry(t *testing.T, store db.RecordStore, subject string) models.Enquiry {
	t.Helper()

	e := models.Enquiry{
		Name:    "Test Visitor",
		Email:   "visitor@example.com",
		Subject: subject,
		Message: "Please send the prospectus.",
	}
	if err := store.CreateEnquiry(context.Background(), &e); err != nil {
		t.Fatalf("Failed to create test enquiry: %v", err)
	}

	return e
}

// CreateTestApplication stores an application for course and returns it
func CreateTestApplication(t *testing.T, store db.RecordStore, course string) models.Application {
	t.Helper()

	a := models.Application{
		FullName: "Test Applicant",
		Email:    "applicant@example.com",
		Phone:    "9876543210",
		Course:   course,
	}
	if err := store.CreateApplication(context.Background(), &a); err != nil {
		t.Fatalf("Failed to create test application: %v", err)
	}

	return a
}

// FakeNotifier records notifications instead of sending mail.
// Err, when set, is returned from every call.
type FakeNotifier struct {
	mu           sync.Mutex
	Enquiries    []models.Enquiry
	Applications []models.Application
	Err          error
}

func (f *FakeNotifier) NotifyEnquiry(ctx context.Context, e models.Enquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Enquiries = append(f.Enquiries, e)
	return f.Err
}

func (f *FakeNotifier) NotifyApplication(ctx context.Context, a models.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Applications = append(f.Applications, a)
	return f.Err
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a request with a form-encoded body, as an HTML form posts it
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
