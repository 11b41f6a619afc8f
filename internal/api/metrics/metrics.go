// Package metrics defines and registers all custom Prometheus metrics for the
// StudyCare client. It is the single source of truth for metric names,
// labels, and help strings.
//
// All collectors are registered with the default Prometheus registry through
// promauto when the package is loaded; the dashboard server exposes them on
// /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "studycare"

// ── API client metrics ────────────────────────────────────────────────────────

// ClientRequestsTotal counts finished backend calls.
// Labels:
//   - method: HTTP method
//   - route: first path segment of the endpoint (e.g. "/notes")
//   - status: HTTP status, "0" when no response arrived
//   - outcome: "success", "failure" or "network_error"
var ClientRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Total number of backend API requests, by route and outcome.",
	},
	[]string{"method", "route", "status", "outcome"},
)

// ClientRequestDuration measures backend round trips, body decoding included.
var ClientRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Duration of backend API requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route"},
)

// TokenCleanupsTotal counts tokens that had to be normalized.
// Label:
//   - source: "storage", "set" or "response"
var TokenCleanupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "client",
		Name:      "token_cleanups_total",
		Help:      "Total number of session tokens altered by normalization.",
	},
	[]string{"source"},
)

// ── Upload queue metrics ──────────────────────────────────────────────────────

// UploadQueueDepth tracks the number of uploads waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var UploadQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "upload_queue_depth",
		Help:      "Current number of uploads pending in each queue worker channel.",
	},
	[]string{"worker_id"},
)

// UploadsTotal counts processed uploads.
// Labels:
//   - kind: "image" or "voice"
//   - result: "ok" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of queued uploads processed, by kind and result.",
	},
	[]string{"kind", "result"},
)

// ClientObserver feeds apiclient callbacks into the collectors above.
type ClientObserver struct{}

func (ClientObserver) ObserveRequest(method, route string, status int, outcome string, elapsed time.Duration) {
	ClientRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status), outcome).Inc()
	ClientRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (ClientObserver) ObserveTokenCleanup(source string) {
	TokenCleanupsTotal.WithLabelValues(source).Inc()
}
