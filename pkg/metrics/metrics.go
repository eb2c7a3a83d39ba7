// Package metrics provides Prometheus instrumentation for outgoing API calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives one observation per completed request.
type Recorder interface {
	RequestStarted(path string)
	RequestFinished(path string, status int, duration time.Duration)
}

// Manager owns the client-side request metrics.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// NewManager creates a metrics manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "storefront",
		subsystem:        "client",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Total API requests by endpoint path and HTTP status (0 means no response).",
	}, []string{"path", "status"})

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "request_duration_seconds",
		Help:      "Latency of API requests by endpoint path.",
		Buckets:   m.histogramBuckets,
	}, []string{"path"})

	m.inFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_in_flight",
		Help:      "API requests currently awaiting a response.",
	})

	m.registry.MustRegister(m.requests, m.requestDuration, m.inFlight)
}

// RequestStarted marks a request as in flight.
func (m *Manager) RequestStarted(string) {
	if !m.enabled {
		return
	}
	m.inFlight.Inc()
}

// RequestFinished records the outcome of a request started with RequestStarted.
func (m *Manager) RequestFinished(path string, status int, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.inFlight.Dec()
	m.requests.WithLabelValues(path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(path).Observe(duration.Seconds())
}

// Registry exposes the registry so callers can gather or serve the metrics.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Enabled reports whether observations are recorded.
func (m *Manager) Enabled() bool {
	return m.enabled
}

type nopRecorder struct{}

func (nopRecorder) RequestStarted(string)                       {}
func (nopRecorder) RequestFinished(string, int, time.Duration) {}

// Nop returns a Recorder that drops every observation.
func Nop() Recorder {
	return nopRecorder{}
}
