package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cabdin",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cabdin",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BlobOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cabdin",
			Name:      "blob_operations_total",
			Help:      "Blob store uploads and removals by bucket and outcome.",
		},
		[]string{"op", "bucket", "result"},
	)
)
