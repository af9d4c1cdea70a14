// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the college website API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(records, counters, notifier, cfg)

The returned mux is not origin-filtered; main wraps it with cors.Filter.

# Endpoints

Health and info:

	GET /         - Liveness message
	GET /api      - API greeting
	GET /health   - Plain "OK"
	GET /metrics  - Prometheus exposition

Submissions:

	POST /api/send-enquiry        - Store an enquiry and notify
	GET  /api/enquiries           - List enquiries
	GET  /api/enquiries/{id}      - Get one enquiry
	POST /api/submit-application  - Store an application and notify
	GET  /api/applications        - List applications
	GET  /api/applications/{id}   - Get one application

Analytics:

	GET  /api/analytics/visits      - Current visit count
	POST /api/analytics/track-visit - Count a visit

Admin:

	POST /api/admin/login - Check admin credentials
*/
package router
