// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the college website API.

# Handler Types

Each handler is a struct holding its collaborators:

  - EnquiryHandler: Contact form submissions (store + notifier)
  - ApplicationHandler: Admission applications (store + notifier)
  - AnalyticsHandler: Visit counter reads and increments
  - AdminHandler: Admin password check

Handlers are created via constructor functions:

	enquiryHandler := handlers.NewEnquiryHandler(records, notifier)
	analyticsHandler := handlers.NewAnalyticsHandler(counters, "site_visits")

Root, APIRoot and Health are plain handler functions.

# Submissions

	POST /api/send-enquiry        → CreateEnquiry (201, enquiryId)
	POST /api/submit-application  → CreateApplication (201, applicationId)

Bodies are normalized and validated before anything is stored. A failed
validation returns 400 with a per-field errors map. The notification is
attempted after the record is stored; a mail failure is logged and the
request still succeeds.

# Visit Counter

	GET  /api/analytics/visits      → GetVisits (get or create, 0 on first read)
	POST /api/analytics/track-visit → TrackVisit (post-increment value)

A counter store failure returns 503. No count is guessed.
*/
package handlers
