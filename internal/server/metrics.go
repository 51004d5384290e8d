package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics wraps a private Prometheus registry with the HTTP and planning
// collectors the server updates.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	PlansTotal          *prometheus.CounterVec
	PlanDuration        prometheus.Histogram
	PlanBoards          prometheus.Histogram
	PlanWaste           prometheus.Histogram
	PlanCacheRequests   *prometheus.CounterVec
}

// NewMetrics creates a registry with the Go runtime and process collectors
// plus the server's own metrics.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{registry: reg}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trimcut_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	m.HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trimcut_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// outcome is one of ok, unplaced, no_stock, invalid
	m.PlansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trimcut_plans_total",
		Help: "Cutting plans computed, by outcome",
	}, []string{"outcome"})

	m.PlanDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "trimcut_plan_duration_seconds",
		Help:    "Time spent in the optimizer per plan",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	})

	m.PlanBoards = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "trimcut_plan_boards",
		Help:    "Boards used per computed plan",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})

	m.PlanWaste = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "trimcut_plan_waste_inches",
		Help:    "Total waste per computed plan in inches",
		Buckets: []float64{6, 12, 24, 48, 96, 192, 384},
	})

	m.PlanCacheRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trimcut_plan_cache_requests_total",
		Help: "Plan cache lookups, by result (hit or miss)",
	}, []string{"result"})

	reg.MustRegister(m.HTTPRequestsTotal, m.HTTPRequestDuration,
		m.PlansTotal, m.PlanDuration, m.PlanBoards, m.PlanWaste, m.PlanCacheRequests)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
