// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/college-site/db"
	"github.com/danielhkuo/college-site/mail"
	"github.com/danielhkuo/college-site/middleware"
	"github.com/danielhkuo/college-site/models"
)

// notifyTimeout bounds a notification attempt within a request
const notifyTimeout = 10 * time.Second

type EnquiryHandler struct {
	store    db.RecordStore
	notifier mail.Notifier
}

func NewEnquiryHandler(store db.RecordStore, notifier mail.Notifier) *EnquiryHandler {
	return &EnquiryHandler{store: store, notifier: notifier}
}

// CreateEnquiry handles POST /api/send-enquiry
func (h *EnquiryHandler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req models.EnquiryRequest
	if err := middleware.ParseBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}

	// Validate input
	req.Normalize()
	if fields := models.Validate(req); fields != nil {
		slog.Info("enquiry validation failed", "fields", len(fields))
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	enquiry := models.Enquiry{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.store.CreateEnquiry(r.Context(), &enquiry); err != nil {
		slog.Error("failed to store enquiry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store enquiry. Please try again later.")
		return
	}

	slog.Info("enquiry saved", "enquiry_id", enquiry.ID)

	// A mail failure never fails the request
	ctx, cancel := context.WithTimeout(r.Context(), notifyTimeout)
	defer cancel()
	if err := h.notifier.NotifyEnquiry(ctx, enquiry); err != nil {
		slog.Error("failed to send enquiry notification", "enquiry_id", enquiry.ID, "error", err)
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateEnquiryResponse{
		Success:   true,
		Message:   "Enquiry received and stored successfully! Notification email attempted.",
		EnquiryID: enquiry.ID,
	})
}

// ListEnquiries handles GET /api/enquiries
func (h *EnquiryHandler) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.store.ListEnquiries(r.Context())
	if err != nil {
		slog.Error("failed to fetch enquiries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch enquiries.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse[models.Enquiry]{
		Success: true,
		Count:   len(enquiries),
		Data:    enquiries,
	})
}

// GetEnquiry handles GET /api/enquiries/{id}
func (h *EnquiryHandler) GetEnquiry(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	enquiry, err := h.store.GetEnquiry(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Enquiry not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch enquiry", "enquiry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to fetch enquiry.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemResponse[models.Enquiry]{
		Success: true,
		Data:    enquiry,
	})
}
