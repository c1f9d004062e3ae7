// Prometheus metrics for the multiplier API.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/ntmul/internal/logging"
)

// Metrics collects and exposes server metrics in Prometheus format.
// It tracks active requests, total requests, multiplication counts by
// operation and outcome, and engine latency.
type Metrics struct {
	handler http.Handler
}

// Prometheus metrics for server-level observability
var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ntmul_active_requests",
		Help: "Current number of active requests",
	})
	totalRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ntmul_requests_total",
		Help: "Total number of requests received",
	})
	multiplicationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ntmul_multiplications_total",
		Help: "Total number of engine calls by operation and outcome",
	}, []string{"operation", "outcome"})
	multiplicationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ntmul_multiplication_duration_seconds",
		Help:    "Engine execution time by operation",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
	}, []string{"operation"})
)

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{
		handler: promhttp.Handler(),
	}
}

// IncrementActiveRequests increments the active requests gauge
// and the total requests counter.
func (m *Metrics) IncrementActiveRequests() {
	activeRequests.Inc()
	totalRequests.Inc()
}

// DecrementActiveRequests decrements the active requests gauge.
func (m *Metrics) DecrementActiveRequests() {
	activeRequests.Dec()
}

// ObserveMultiplication records one engine call.
//
// Parameters:
//   - operation: "multiply" or "square".
//   - outcome: "ok", "rejected" or "error".
//   - duration: The engine execution time.
func (m *Metrics) ObserveMultiplication(operation, outcome string, duration time.Duration) {
	multiplicationsTotal.WithLabelValues(operation, outcome).Inc()
	if outcome == "ok" {
		multiplicationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

// WritePrometheus writes metrics in Prometheus text format to the HTTP response.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// handleMetrics is the HTTP handler for the /metrics endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// metricsMiddleware tracks request counts around a handler.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// loggingMiddleware logs each request with its duration.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		s.logger.Debug("request handled",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000.0))
	}
}
