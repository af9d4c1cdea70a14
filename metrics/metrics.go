// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts completed HTTP requests by method and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "college_site_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "college_site_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// CounterStoreLatency records counter store operation latency.
	CounterStoreLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "college_site_counter_store_latency_seconds",
			Help:    "Counter store operation latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)

	// OriginDecisions counts origin admission decisions by outcome.
	OriginDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "college_site_origin_decisions_total",
			Help: "Origin admission decisions",
		},
		[]string{"allowed", "reason"},
	)
)

// ObserveRequest records one completed HTTP request
func ObserveRequest(method string, status int, duration time.Duration) {
	RequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// ObserveOrigin records one origin admission decision
func ObserveOrigin(allowed bool, reason string) {
	OriginDecisions.WithLabelValues(strconv.FormatBool(allowed), reason).Inc()
}

// Handler serves the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
