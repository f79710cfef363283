package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the stock service
type Metrics struct {
	requestCounter   *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	requestSummary   *prometheus.SummaryVec
	recordedQuantity *prometheus.CounterVec
	rollovers        prometheus.Counter
	totalDescription prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_service_requests_total",
				Help: "Total number of requests to stock service",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stock_service_request_duration_seconds",
				Help:    "Duration of stock service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		// Summary metric for percentile calculation (p50, p90, p95, p99)
		requestSummary: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "stock_service_request_duration_summary",
				Help: "Summary of request durations with percentiles (client-side quantiles)",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.01,
					0.99: 0.001,
				},
				MaxAge: 10 * time.Minute,
			},
			[]string{"method", "endpoint"},
		),
		recordedQuantity: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stock_service_recorded_quantity_total",
				Help: "Sum of quantities recorded by stock entries",
			},
			[]string{"kind"},
		),
		rollovers: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "stock_service_rollovers_total",
				Help: "Number of completed opening stock rollovers",
			},
		),
		totalDescription: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "stock_service_total_descriptions",
				Help: "Total number of descriptions in the system",
			},
		),
	}

	reg.MustRegister(
		m.requestCounter,
		m.requestLatency,
		m.requestSummary,
		m.recordedQuantity,
		m.rollovers,
		m.totalDescription,
	)
	return m
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// instrument wraps handlers with Prometheus metrics
func (m *Metrics) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()

		m.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		m.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		m.requestSummary.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (m *Metrics) recordEntry(purchaseQty, usageQty int) {
	m.recordedQuantity.WithLabelValues("purchase").Add(float64(purchaseQty))
	m.recordedQuantity.WithLabelValues("usage").Add(float64(usageQty))
}
