// Package metrics defines the Prometheus collectors exported by the server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	PageViews       *prometheus.CounterVec
	PageNotFound    prometheus.Counter
	ContentMissing  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ContentReloads  *prometheus.CounterVec
	ContentBlocks   prometheus.Gauge
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		PageViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ausverity",
			Name:      "page_views_total",
			Help:      "Practice area pages rendered, by state and practice area.",
		}, []string{"state", "practice_area"}),
		PageNotFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ausverity",
			Name:      "page_not_found_total",
			Help:      "Page requests rejected because the state or practice area is unknown.",
		}),
		ContentMissing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ausverity",
			Name:      "page_content_missing_total",
			Help:      "Pages rendered for a valid pair that has no content block.",
		}, []string{"state", "practice_area"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ausverity",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route, method and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
		ContentReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ausverity",
			Name:      "content_reloads_total",
			Help:      "Content table reloads by result.",
		}, []string{"result"}),
		ContentBlocks: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ausverity",
			Name:      "content_blocks",
			Help:      "Content blocks in the current table.",
		}),
	}

	m.registry.MustRegister(
		m.PageViews,
		m.PageNotFound,
		m.ContentMissing,
		m.RequestDuration,
		m.ContentReloads,
		m.ContentBlocks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
