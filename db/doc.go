// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists enquiries and applications and opens the configured
backend.

# Opening a Backend

Open connects according to Config.DatabaseType and returns both stores:

	backend, err := db.Open(ctx, cfg)
	defer backend.Close()

	backend.Records  // RecordStore
	backend.Counters // counter.Store

Counters share the record connection unless COUNTER_BACKEND=redis.

# Schema Creation

CreateSchema initializes all required SQL tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on Postgres and SQLite.

# Tables

  - enquiry: Contact form submissions
  - application: Admission applications
  - visit_counter: One row per counter key (count >= 0)

On MongoDB the equivalent collections are enquiries, applications and
visitcounters. EnsureIndexes creates the submittedAt listing indexes.

# Record IDs

Records get a UUID and a UTC submission time when the caller leaves them
empty. Lists are ordered newest first. A missing ID yields ErrNotFound.
*/
package db
