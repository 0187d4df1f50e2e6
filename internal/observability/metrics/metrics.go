package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors exported on the metrics endpoint. It uses a
// private registry so that tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	inferenceTotal    *prometheus.CounterVec
	inferenceDuration *prometheus.HistogramVec
	spansDecoded      *prometheus.CounterVec
	historyRecords    *prometheus.CounterVec
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hanja",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hanja",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace:   "hanja",
			Subsystem:   "http",
			Name:        "in_flight_requests",
			Help:        "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{"service": service},
		},
	)
	inferenceTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hanja",
			Subsystem: "inference",
			Name:      "calls_total",
			Help:      "Total inference backend calls by operation and outcome.",
		},
		[]string{"service", "operation", "status"},
	)
	inferenceDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hanja",
			Subsystem: "inference",
			Name:      "call_duration_seconds",
			Help:      "Inference backend call duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"service", "operation"},
	)
	spansDecoded := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hanja",
			Subsystem: "ner",
			Name:      "spans_decoded_total",
			Help:      "Entity spans decoded from IOB predictions by label.",
		},
		[]string{"service", "label"},
	)
	historyRecords := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hanja",
			Subsystem: "history",
			Name:      "records_total",
			Help:      "History records written by action and kind.",
		},
		[]string{"service", "action", "kind"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		inferenceTotal,
		inferenceDuration,
		spansDecoded,
		historyRecords,
	)

	return &Metrics{
		registry:          registry,
		requestTotal:      requestTotal,
		requestDuration:   requestDuration,
		requestInFlight:   requestInFlight,
		inferenceTotal:    inferenceTotal,
		inferenceDuration: inferenceDuration,
		spansDecoded:      spansDecoded,
		historyRecords:    historyRecords,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latency keyed by the route pattern.
func (m *Metrics) Middleware(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requestTotal.WithLabelValues(service, c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(service, c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// ObserveInference records one backend call.
func (m *Metrics) ObserveInference(operation string, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.inferenceTotal.WithLabelValues(ServiceLabel, operation, status).Inc()
	m.inferenceDuration.WithLabelValues(ServiceLabel, operation).Observe(d.Seconds())
}

// ObserveSpans counts decoded spans per label.
func (m *Metrics) ObserveSpans(labels []string) {
	for _, l := range labels {
		m.spansDecoded.WithLabelValues(ServiceLabel, l).Inc()
	}
}

// ObserveHistory counts a written history record.
func (m *Metrics) ObserveHistory(action string, inputOnly bool) {
	kind := "saved"
	if inputOnly {
		kind = "input"
	}
	m.historyRecords.WithLabelValues(ServiceLabel, action, kind).Inc()
}

// ServiceLabel is the service label on domain collectors.
const ServiceLabel = "hanja-api"
