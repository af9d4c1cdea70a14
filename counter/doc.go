// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package counter stores named counters that only move up.

Each operation is a single atomic request to the backend:

	SQL    INSERT ... ON CONFLICT (counter_key) DO UPDATE ... RETURNING count
	Mongo  FindOneAndUpdate, upsert, $setOnInsert / $inc, ReturnDocument After
	Redis  MULTI { SETNX, GET } / INCR

Concurrent first access to a missing key yields exactly one record.
Concurrent increments each see a distinct post-increment value.

Failures wrap ErrStoreUnavailable and are never retried.
*/
package counter
