// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cors admits or rejects requests by their Origin header.

# Allow-List

The allow-list is passed in at construction; there is no global state:

	filter, err := cors.NewFilter(cors.Policy{
		AllowedOrigins:   []string{"https://college.example", "http://localhost:3000"},
		AllowCredentials: true,
	})

Every entry must be scheme://host[:port]. Wildcards, paths and blank
entries fail with ErrInvalidConfiguration, as does an empty list.

# Matching

Both configured entries and the request origin lose one trailing "/".
After that the comparison is exact and case-sensitive:

	https://example.com/   matches  https://example.com
	https://Example.com    does not match
	https://example.com//  does not match

An admitted request gets its Origin header echoed back unchanged in
Access-Control-Allow-Origin; normalization only affects matching.
A request without an Origin header is always admitted and gets no
Access-Control-Allow-Origin header.

# Handler

	server := http.Server{Handler: filter.Handler(mux)}

  - Admitted: CORS headers are set, the request reaches mux.
  - Rejected: 403 JSON error naming the origin; mux is never called.
  - Preflight (OPTIONS): 204 with headers when admitted, 403 without
    headers when rejected. Preflights never reach mux.

Each decision is logged and passed to the WithObserver callback.
*/
package cors
