// Package metrics defines all custom Prometheus metrics for the TechieFinder
// client. It is the single source of truth for metric names, labels, and
// help strings; metrics register themselves with the default registry at
// package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "techiefinder_client"

// ── Gateway metrics ───────────────────────────────────────────────────────────

// RequestsTotal counts completed backend calls.
// Labels:
//   - endpoint: the logical endpoint name (e.g. "login", "technicians_available")
//   - status: the HTTP status code, or "network_error" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of backend requests, by endpoint and outcome.",
	},
	[]string{"endpoint", "status"},
)

// RequestDuration measures round-trip time per endpoint.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of backend requests from send to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTransitionsTotal counts session state transitions.
// Label:
//   - kind: "restored", "login", "register", "logout", "invalidated"
var SessionTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_transitions_total",
		Help:      "Total number of session state transitions, by kind.",
	},
	[]string{"kind"},
)
