// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/college-site/middleware"
)

var (
	ErrOriginRejected       = errors.New("origin rejected")
	ErrInvalidConfiguration = errors.New("invalid CORS configuration")
)

// Decision reasons
const (
	ReasonNoOrigin       = "no origin"
	ReasonAllowListed    = "allow-listed"
	ReasonNotAllowListed = "not allow-listed"
)

// Default policy values
var (
	DefaultMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"}
	DefaultHeaders = []string{"Content-Type", "Authorization", "X-Requested-With", "Accept"}
)

// RejectedError names the origin that failed the allow-list check.
type RejectedError struct {
	Origin string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("origin %q not allowed by CORS policy", e.Origin)
}

func (e *RejectedError) Unwrap() error {
	return ErrOriginRejected
}

// Policy is the static admission configuration.
type Policy struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// Decision is the per-request admission outcome. It is never persisted.
type Decision struct {
	Allowed    bool
	Origin     string
	Normalized string
	Reason     string
}

// Option customizes a Filter
type Option func(*Filter)

// WithObserver registers a callback invoked once per decision.
func WithObserver(fn func(Decision)) Option {
	return func(f *Filter) {
		f.observe = fn
	}
}

// WithLogger overrides the logger used for decision logs.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Filter) {
		f.logger = logger
	}
}

// Filter decides whether a request origin is admitted. It holds no mutable
// state after construction and is safe for concurrent use.
type Filter struct {
	allowed          map[string]struct{}
	methods          string
	headers          string
	allowCredentials bool
	maxAge           string
	observe          func(Decision)
	logger           *slog.Logger
}

// NewFilter validates and normalizes the allow-list.
func NewFilter(policy Policy, opts ...Option) (*Filter, error) {
	if len(policy.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("%w: allow-list is empty", ErrInvalidConfiguration)
	}

	allowed := make(map[string]struct{}, len(policy.AllowedOrigins))
	for _, entry := range policy.AllowedOrigins {
		normalized, err := validateEntry(entry)
		if err != nil {
			return nil, err
		}
		allowed[normalized] = struct{}{}
	}

	methods := policy.AllowedMethods
	if len(methods) == 0 {
		methods = DefaultMethods
	}
	headers := policy.AllowedHeaders
	if len(headers) == 0 {
		headers = DefaultHeaders
	}

	f := &Filter{
		allowed:          allowed,
		methods:          strings.Join(methods, ","),
		headers:          strings.Join(headers, ", "),
		allowCredentials: policy.AllowCredentials,
		logger:           slog.Default(),
	}
	if policy.MaxAge > 0 {
		f.maxAge = strconv.Itoa(int(policy.MaxAge.Seconds()))
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// NormalizeOrigin strips a single trailing slash.
func NormalizeOrigin(origin string) string {
	return strings.TrimSuffix(origin, "/")
}

func validateEntry(entry string) (string, error) {
	if strings.TrimSpace(entry) == "" {
		return "", fmt.Errorf("%w: empty origin entry", ErrInvalidConfiguration)
	}
	if entry != strings.TrimSpace(entry) {
		return "", fmt.Errorf("%w: origin %q has surrounding whitespace", ErrInvalidConfiguration, entry)
	}
	if strings.Contains(entry, "*") {
		return "", fmt.Errorf("%w: wildcard origin %q is not supported", ErrInvalidConfiguration, entry)
	}

	normalized := NormalizeOrigin(entry)
	u, err := url.Parse(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: origin %q: %v", ErrInvalidConfiguration, entry, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: origin %q must use http or https", ErrInvalidConfiguration, entry)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: origin %q has no host", ErrInvalidConfiguration, entry)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil {
		return "", fmt.Errorf("%w: origin %q must be scheme://host[:port] only", ErrInvalidConfiguration, entry)
	}
	return normalized, nil
}

// Decide checks origin against the allow-list. An empty origin (non-browser
// or same-origin caller) is always allowed. A rejected origin yields a
// *RejectedError; it is a decision, not a failure.
func (f *Filter) Decide(origin string) (Decision, error) {
	d := Decision{Origin: origin, Normalized: NormalizeOrigin(origin)}

	var err error
	switch {
	case origin == "":
		d.Allowed = true
		d.Reason = ReasonNoOrigin
	case f.isAllowed(d.Normalized):
		d.Allowed = true
		d.Reason = ReasonAllowListed
	default:
		d.Reason = ReasonNotAllowListed
		err = &RejectedError{Origin: origin}
	}

	if d.Allowed {
		f.logger.Info("CORS check",
			"origin", origin,
			"normalized", d.Normalized,
			"allowed", true,
			"reason", d.Reason,
		)
	} else {
		f.logger.Warn("CORS check",
			"origin", origin,
			"normalized", d.Normalized,
			"allowed", false,
			"reason", d.Reason,
		)
	}
	if f.observe != nil {
		f.observe(d)
	}
	return d, err
}

func (f *Filter) isAllowed(normalized string) bool {
	_, ok := f.allowed[normalized]
	return ok
}

// Handler wraps next with origin admission. Preflight requests terminate here
// and never reach next.
func (f *Filter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		preflight := r.Method == http.MethodOptions

		if origin != "" {
			w.Header().Add("Vary", "Origin")
		}

		d, err := f.Decide(origin)
		if err != nil {
			if preflight {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
			return
		}

		f.setHeaders(w, d)

		if preflight {
			if f.maxAge != "" {
				w.Header().Set("Access-Control-Max-Age", f.maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (f *Filter) setHeaders(w http.ResponseWriter, d Decision) {
	h := w.Header()
	if d.Origin != "" {
		h.Set("Access-Control-Allow-Origin", d.Origin)
		if f.allowCredentials {
			h.Set("Access-Control-Allow-Credentials", "true")
		}
	}
	h.Set("Access-Control-Allow-Methods", f.methods)
	h.Set("Access-Control-Allow-Headers", f.headers)
}

