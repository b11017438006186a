// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus instrumentation shared by the HTTP
// layer and the storage layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "staffd_http_request_duration_seconds",
		Help:    "HTTP request latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "staffd_http_requests_in_flight",
		Help: "Current number of HTTP requests being served",
	})

	// Storage metrics
	storageOpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "staffd_storage_op_duration_seconds",
		Help:    "Storage operation latencies in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "op", "status"})

	storageOpsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "staffd_storage_ops_total",
		Help: "Total storage operations by backend, operation and status",
	}, []string{"backend", "op", "status"})
)

// ObserveStorageOp records one storage operation outcome.
func ObserveStorageOp(backend, op string, err error, elapsed time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	storageOpsTotal.WithLabelValues(backend, op, status).Inc()
	storageOpDuration.WithLabelValues(backend, op, status).Observe(elapsed.Seconds())
}
