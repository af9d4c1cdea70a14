// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/danielhkuo/college-site/models"
	"github.com/danielhkuo/college-site/testutil"
)

func TestCreateApplication(t *testing.T) {
	store := testutil.SetupTestDB(t)
	notifier := &testutil.FakeNotifier{}
	handler := NewApplicationHandler(store, notifier)

	body := models.ApplicationRequest{
		FullName:              "Rahul Mehta",
		Email:                 "rahul@example.com",
		Phone:                 "9876543210",
		Course:                "B.Sc. Physics",
		DateOfBirth:           "2006-04-12",
		PreviousQualification: "HSC",
	}
	req := testutil.MakeRequest("POST", "/api/submit-application", body, nil)
	w := httptest.NewRecorder()

	handler.CreateApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateApplicationResponse
	testutil.AssertJSON(t, w, &resp)
	if !resp.Success || resp.ApplicationID == "" {
		t.Fatalf("Expected success with applicationId, got %+v", resp)
	}

	stored, err := store.GetApplication(req.Context(), resp.ApplicationID)
	if err != nil {
		t.Fatalf("Expected application to be stored: %v", err)
	}
	if stored.Course != "B.Sc. Physics" || stored.DateOfBirth != "2006-04-12" {
		t.Errorf("Unexpected stored application: %+v", stored)
	}

	if len(notifier.Applications) != 1 {
		t.Errorf("Expected one notification, got %d", len(notifier.Applications))
	}
}

func TestCreateApplication_FormEncoded(t *testing.T) {
	store := testutil.SetupTestDB(t)
	notifier := &testutil.FakeNotifier{}
	handler := NewApplicationHandler(store, notifier)

	form := url.Values{
		"fullName":              {"Rahul Mehta"},
		"email":                 {"rahul@example.com"},
		"phone":                 {"9876543210"},
		"course":                {"B.Com"},
		"previousQualification": {"HSC"},
		"unknownField":          {"ignored"},
	}
	req := testutil.MakeFormRequest("POST", "/api/submit-application", form)
	w := httptest.NewRecorder()

	handler.CreateApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateApplicationResponse
	testutil.AssertJSON(t, w, &resp)
	stored, err := store.GetApplication(req.Context(), resp.ApplicationID)
	if err != nil {
		t.Fatalf("Expected application to be stored: %v", err)
	}
	if stored.FullName != "Rahul Mehta" || stored.Course != "B.Com" || stored.PreviousQualification != "HSC" {
		t.Errorf("Unexpected stored application: %+v", stored)
	}
	if len(notifier.Applications) != 1 {
		t.Errorf("Expected one notification, got %d", len(notifier.Applications))
	}
}

func TestCreateApplication_Validation(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewApplicationHandler(store, &testutil.FakeNotifier{})

	testCases := []struct {
		name          string
		body          models.ApplicationRequest
		expectedField string
	}{
		{"missing course", models.ApplicationRequest{FullName: "A", Email: "a@b.co", Phone: "1234567"}, "course"},
		{"short phone", models.ApplicationRequest{FullName: "A", Email: "a@b.co", Phone: "12", Course: "BA"}, "phone"},
		{"bad date of birth", models.ApplicationRequest{FullName: "A", Email: "a@b.co", Phone: "1234567", Course: "BA", DateOfBirth: "12-04-2006"}, "dateOfBirth"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/api/submit-application", tc.body, nil)
			w := httptest.NewRecorder()

			handler.CreateApplication(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Errors[tc.expectedField] == "" {
				t.Errorf("Expected error for field %s, got %v", tc.expectedField, resp.Errors)
			}
		})
	}
}

func TestListAndGetApplications(t *testing.T) {
	store := testutil.SetupTestDB(t)
	handler := NewApplicationHandler(store, &testutil.FakeNotifier{})

	app := testutil.CreateTestApplication(t, store, "MBA")

	req := httptest.NewRequest("GET", "/api/applications", nil)
	w := httptest.NewRecorder()
	handler.ListApplications(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var list models.ListResponse[models.Application]
	testutil.AssertJSON(t, w, &list)
	if list.Count != 1 || list.Data[0].ID != app.ID {
		t.Errorf("Expected the created application, got %+v", list)
	}

	req = httptest.NewRequest("GET", "/api/applications/"+app.ID, nil)
	req.SetPathValue("id", app.ID)
	w = httptest.NewRecorder()
	handler.GetApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	req = httptest.NewRequest("GET", "/api/applications/missing", nil)
	req.SetPathValue("id", "missing")
	w = httptest.NewRecorder()
	handler.GetApplication(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
