// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/college-site/db"
	"github.com/danielhkuo/college-site/mail"
	"github.com/danielhkuo/college-site/middleware"
	"github.com/danielhkuo/college-site/models"
)

type ApplicationHandler struct {
	store    db.RecordStore
	notifier mail.Notifier
}

func NewApplicationHandler(store db.RecordStore, notifier mail.Notifier) *ApplicationHandler {
	return &ApplicationHandler{store: store, notifier: notifier}
}

// CreateApplication handles POST /api/submit-application
func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req models.ApplicationRequest
	if err := middleware.ParseBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	req.Normalize()
	if fields := models.Validate(req); fields != nil {
		slog.Info("application validation failed", "fields", len(fields))
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	application := models.Application{
		FullName:              req.FullName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Course:                req.Course,
		DateOfBirth:           req.DateOfBirth,
		Address:               req.Address,
		PreviousQualification: req.PreviousQualification,
		Message:               req.Message,
	}
	if err := h.store.CreateApplication(r.Context(), &application); err != nil {
		slog.Error("failed to store application", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store application. Please try again later.")
		return
	}

	slog.Info("application saved", "application_id", application.ID, "course", application.Course)

	ctx, cancel := context.WithTimeout(r.Context(), notifyTimeout)
	defer cancel()
	if err := h.notifier.NotifyApplication(ctx, application); err != nil {
		slog.Error("failed to send application notification", "application_id", application.ID, "error", err)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateApplicationResponse{
		Success:       true,
		Message:       "Application received successfully!",
		ApplicationID: application.ID,
	})
}

// ListApplications handles GET /api/applications
func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.store.ListApplications(r.Context())
	if err != nil {
		slog.Error("failed to fetch applications", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch applications.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.Application]{
		Success: true,
		Count:   len(applications),
		Data:    applications,
	})
}

// GetApplication handles GET /api/applications/{id}
func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	application, err := h.store.GetApplication(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch application", "application_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch application.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemResponse[models.Application]{
		Success: true,
		Data:    application,
	})
}
