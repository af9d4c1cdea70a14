// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/college-site/auth"
	"github.com/danielhkuo/college-site/middleware"
	"github.com/danielhkuo/college-site/models"
)

type AdminHandler struct {
	hasher auth.Hasher
	creds  auth.AdminCredentials
}

func NewAdminHandler(hasher auth.Hasher, creds auth.AdminCredentials) *AdminHandler {
	return &AdminHandler{hasher: hasher, creds: creds}
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err)
		return
	}
	if fields := models.Validate(req); fields != nil {
		middleware.ValidationErrorResponse(w, fields)
		return
	}

	err := auth.CheckAdmin(h.hasher, h.creds, req.Username, req.Password)
	switch {
	case errors.Is(err, auth.ErrLoginDisabled):
		slog.Warn("admin login attempted but ADMIN_PASSWORD_HASH is not set")
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Admin login is not configured")
		return
	case err != nil:
		slog.Warn("admin login failed", "username", req.Username, "remote", middleware.GetClientIP(r))
		middleware.JSONResponse(w, http.StatusUnauthorized, models.LoginResponse{
			Success: false,
			Message: "Invalid credentials",
		})
		return
	}

	slog.Info("admin login succeeded", "username", req.Username)
	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Message: "Login successful",
	})
}
