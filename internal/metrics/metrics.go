// Package metrics provides Prometheus metrics for the portfolio site.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contact outcomes.
const (
	OutcomeDelivered = "delivered"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
)

// Manager owns the site's collectors and the registry they live in.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	pageRenders        prometheus.Counter
	particlesGenerated prometheus.Counter
	contactSubmissions *prometheus.CounterVec
	visitsRecorded     prometheus.Counter
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) { m.namespace = ns }
}

// WithRuntimeCollectors adds Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(m *Manager) {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
}

// NewManager creates a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "portfolio",
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.pageRenders = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "page_renders_total",
		Help:      "Number of rendered portfolio pages.",
	})
	m.particlesGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "ambient_particles_generated_total",
		Help:      "Number of ambient particles generated across all renders.",
	})
	m.contactSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "contact_submissions_total",
		Help:      "Contact form submissions by outcome.",
	}, []string{"outcome"})
	m.visitsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "visits_recorded_total",
		Help:      "Visits written to the analytics store.",
	})
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route and status code.",
	}, []string{"method", "route", "status"})
	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	m.registry.MustRegister(
		m.pageRenders,
		m.particlesGenerated,
		m.contactSubmissions,
		m.visitsRecorded,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// PageRendered records one page render with n particles.
func (m *Manager) PageRendered(n int) {
	m.pageRenders.Inc()
	m.particlesGenerated.Add(float64(n))
}

// ContactSubmitted records a contact submission outcome.
func (m *Manager) ContactSubmitted(outcome string) {
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}

// VisitRecorded records a stored visit.
func (m *Manager) VisitRecorded() { m.visitsRecorded.Inc() }

// ObserveRequest records one HTTP request.
func (m *Manager) ObserveRequest(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
