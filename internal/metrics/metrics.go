// Package metrics records Prometheus metrics for backend API calls.
package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/five82/liftlog/internal/fitness"
)

// ErrNoRegistry is returned by WriteTextfile when the manager was built
// without a gatherable registry.
var ErrNoRegistry = errors.New("metrics registry is not gatherable")

// Manager owns the API request collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	transportErrors *prometheus.CounterVec
}

// Ensure Manager can observe the fitness client.
var _ fitness.Observer = (*Manager)(nil)

// New builds a Manager and registers its collectors. Without
// WithPrometheusRegistry a fresh private registry is used.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		namespace:        "liftlog",
		subsystem:        "api",
		histogramBuckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "requests_total",
		Help:      "Backend API requests by route template, method and status code.",
	}, []string{"route", "method", "code"})

	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "request_duration_seconds",
		Help:      "Backend API request latency.",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})

	m.transportErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "transport_errors_total",
		Help:      "Backend API requests that failed before a response arrived.",
	}, []string{"route", "method"})

	for _, c := range []prometheus.Collector{m.requests, m.requestDuration, m.transportErrors} {
		if err := m.registry.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

// ObserveRequest implements fitness.Observer.
func (m *Manager) ObserveRequest(info fitness.RequestInfo) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(info.Route, info.Method).Observe(info.Duration.Seconds())
	if info.StatusCode == 0 {
		m.transportErrors.WithLabelValues(info.Route, info.Method).Inc()
		m.requests.WithLabelValues(info.Route, info.Method, "error").Inc()
		return
	}
	m.requests.WithLabelValues(info.Route, info.Method, strconv.Itoa(info.StatusCode)).Inc()
}

// Gatherer returns the registry as a Gatherer when it is one.
func (m *Manager) Gatherer() (prometheus.Gatherer, bool) {
	g, ok := m.registry.(prometheus.Gatherer)
	return g, ok
}

// WriteTextfile writes the current metrics in the text exposition format,
// suitable for the node exporter textfile collector.
func (m *Manager) WriteTextfile(path string) error {
	g, ok := m.Gatherer()
	if !ok {
		return ErrNoRegistry
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
