// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms), and records the request in the Prometheus request metrics.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationErrorResponse(w, fields)

Parse request bodies (capped at 1 MiB). HTML form posts
(application/x-www-form-urlencoded) are mapped onto fields by json tag
name; anything else is decoded as JSON:

	var req models.EnquiryRequest
	if err := middleware.ParseBody(r, &req); err != nil {
		middleware.BodyErrorResponse(w, err) // "Invalid JSON" or "Invalid form data"
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request and failed-login logs.
*/
package middleware
