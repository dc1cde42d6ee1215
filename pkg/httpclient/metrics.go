package httpclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_client_requests_total",
			Help: "Total number of outbound API requests",
		},
		[]string{"client", "method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_client_request_duration_seconds",
			Help:    "Outbound API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"client", "method", "status"},
	)

	inFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "api_client_requests_in_flight",
			Help: "Current number of outbound API requests awaiting a response",
		},
		[]string{"client"},
	)
)

// observeRequest records one finished request. status is the HTTP status
// code, or "error" when no response arrived.
func observeRequest(client, method, status string, d time.Duration) {
	requestsTotal.WithLabelValues(client, method, status).Inc()
	requestDuration.WithLabelValues(client, method, status).Observe(d.Seconds())
}
