// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file is loaded first (godotenv). It never overrides variables that
are already set.

# CLI Flags and Environment Variables

	-p            PORT                    (default 3001)
	-t            DATABASE_TYPE           (sqlite, postgres, mongo; default sqlite)
	-d            DATABASE_URL            (MONGODB_URI for mongo)
	-mongo-db     MONGODB_DATABASE        (default college)
	-counter      COUNTER_BACKEND         (empty or redis)
	-redis        REDIS_URL
	-visit-key    VISIT_COUNTER_KEY       (default site_visits)
	-origins      ALLOWED_ORIGINS         (default http://localhost:3000)
	-credentials  CORS_ALLOW_CREDENTIALS  (default true)
	-smtp-host    SMTP_HOST               (default smtp.gmail.com)
	-smtp-port    SMTP_PORT               (default 587)
	-log-format   LOG_FORMAT              (text or json)

Environment only: EMAIL_USER, EMAIL_PASS, COLLEGE_EMAIL_RECEIVER,
ADMIN_USERNAME, ADMIN_PASSWORD_HASH.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - no database URL is provided
  - DATABASE_TYPE or COUNTER_BACKEND is unknown
  - COUNTER_BACKEND=redis without REDIS_URL
  - a numeric or boolean value does not parse

Origins are only split here; the cors package validates each entry.

# Utility Mode

	go run . -hash-password 'secret'

prints a bcrypt digest for ADMIN_PASSWORD_HASH. No other validation runs.
*/
package cliparse
