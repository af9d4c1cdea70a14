// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/college-site/auth"
	"github.com/danielhkuo/college-site/cliparse"
	"github.com/danielhkuo/college-site/counter"
	"github.com/danielhkuo/college-site/db"
	"github.com/danielhkuo/college-site/handlers"
	"github.com/danielhkuo/college-site/mail"
	"github.com/danielhkuo/college-site/metrics"
	"github.com/danielhkuo/college-site/middleware"
)

func NewRouter(records db.RecordStore, counters counter.Store, notifier mail.Notifier, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	enquiryHandler := handlers.NewEnquiryHandler(records, notifier)
	applicationHandler := handlers.NewApplicationHandler(records, notifier)
	analyticsHandler := handlers.NewAnalyticsHandler(counters, cfg.VisitCounterKey)
	adminHandler := handlers.NewAdminHandler(auth.BcryptHasher{}, auth.AdminCredentials{
		Username:     cfg.AdminUsername,
		PasswordHash: cfg.AdminPasswordHash,
	})

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoints
	mux.HandleFunc("GET /{$}", middleware.WithLogging(handlers.Root))
	mux.HandleFunc("GET /api", middleware.WithLogging(handlers.APIRoot))

	// Enquiries
	mux.HandleFunc("POST /api/send-enquiry", middleware.WithLogging(enquiryHandler.CreateEnquiry))
	mux.HandleFunc("GET /api/enquiries", middleware.WithLogging(enquiryHandler.ListEnquiries))
	mux.HandleFunc("GET /api/enquiries/{id}", middleware.WithLogging(enquiryHandler.GetEnquiry))

	// Admission applications
	mux.HandleFunc("POST /api/submit-application", middleware.WithLogging(applicationHandler.CreateApplication))
	mux.HandleFunc("GET /api/applications", middleware.WithLogging(applicationHandler.ListApplications))
	mux.HandleFunc("GET /api/applications/{id}", middleware.WithLogging(applicationHandler.GetApplication))

	// Visit analytics
	mux.HandleFunc("GET /api/analytics/visits", middleware.WithLogging(analyticsHandler.GetVisits))
	mux.HandleFunc("POST /api/analytics/track-visit", middleware.WithLogging(analyticsHandler.TrackVisit))

	// Admin
	mux.HandleFunc("POST /api/admin/login", middleware.WithLogging(adminHandler.Login))

	return mux
}
