package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Registry holds every collector exported by this process.
var Registry = prometheus.NewRegistry()

var (
	factory = promauto.With(Registry)

	httpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "careerai_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
	generationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerai_cover_letter_generations_total",
			Help: "Cover letter generations by outcome",
		},
		[]string{"outcome"},
	)
	generationDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careerai_cover_letter_generation_duration_seconds",
			Help:    "Generation client latency in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route, status string, d time.Duration) {
	httpRequestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// ObserveGeneration records a generation call's outcome and latency.
func ObserveGeneration(outcome string, d time.Duration) {
	generationsTotal.WithLabelValues(outcome).Inc()
	generationDuration.Observe(d.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
