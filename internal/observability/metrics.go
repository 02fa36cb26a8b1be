package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce            sync.Once
	contactSubmissionsTotal *prometheus.CounterVec
	emailDispatchesTotal    *prometheus.CounterVec
	requestLatencySeconds   *prometheus.HistogramVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		contactSubmissionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total number of contact form submissions by outcome.",
		}, []string{"status"})

		emailDispatchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "email_dispatches_total",
			Help: "Total number of outbound email dispatch attempts.",
		}, []string{"kind", "status"})

		requestLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.0},
		}, []string{"method", "route"})

		prometheus.MustRegister(contactSubmissionsTotal, emailDispatchesTotal, requestLatencySeconds)
	})
}

// ContactSubmissions exposes the counter for contact submission outcomes.
func ContactSubmissions() *prometheus.CounterVec {
	RegisterMetrics()
	return contactSubmissionsTotal
}

// EmailDispatches exposes the counter for email dispatch attempts.
func EmailDispatches() *prometheus.CounterVec {
	RegisterMetrics()
	return emailDispatchesTotal
}

// RequestLatency exposes the latency histogram for API requests.
func RequestLatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return requestLatencySeconds
}
