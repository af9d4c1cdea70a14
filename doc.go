// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the college website API server.

The server stores contact enquiries and admission applications, mails a
notification for each, counts site visits, and admits browser requests only
from an allow-listed set of origins.

# Starting the Server

With no flags the server uses SQLite:

	DATABASE_URL=college.db go run .

Or against Postgres with flags:

	go run . -t postgres -d "postgres://..." -origins "https://college.example"

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string or SQLite file path
    (MONGODB_URI is accepted when DATABASE_TYPE=mongo)

Optional settings:

  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): sqlite, postgres or mongo (default: sqlite)
  - ALLOWED_ORIGINS (-origins): comma-separated CORS allow-list
  - COUNTER_BACKEND (-counter): set to redis to keep visit counters in REDIS_URL
  - EMAIL_USER, EMAIL_PASS, COLLEGE_EMAIL_RECEIVER: enable notification mail
  - ADMIN_PASSWORD_HASH: enables POST /api/admin/login
  - LOG_FORMAT (-log-format): text or json

A .env file in the working directory is loaded first.

# Architecture

  - cors: Origin admission filter wrapping every route
  - counter: Atomic visit counters (SQL, MongoDB, Redis)
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging and JSON helpers
  - db: Record stores and backend wiring
  - mail: SMTP notifications
  - metrics: Prometheus instrumentation
  - models: Request/response types and validation
  - auth: Password hashing and the admin check
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
