// Package metrics exposes the prometheus collectors for HTTP traffic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts handled HTTP requests by method, path and status.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newscleanse_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDuration observes request latency per path.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "newscleanse_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ExternalCallFailures counts degraded external collaborator calls.
	// Failed calls fall back silently, so the counter is the only signal.
	ExternalCallFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newscleanse_external_call_failures_total",
			Help: "External recommender/sentiment/cleanse calls that fell back.",
		},
		[]string{"service"},
	)
)
