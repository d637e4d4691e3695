// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics owns the Prometheus collectors exposed on /metrics.

Collectors are registered on a private registry rather than the global
default so tests can build as many [Metrics] values as they like.
*/
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bibble"

// Cache lookup outcomes.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Import row outcomes.
const (
	ImportCreated = "created"
	ImportUpdated = "updated"
	ImportSkipped = "skipped"
)

// Metrics groups every collector the API server records.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LanguageCache   *prometheus.CounterVec
	ImportRows      *prometheus.CounterVec
	ContentWrites   *prometheus.CounterVec
}

// New builds a fresh registry with process and Go runtime collectors attached.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		LanguageCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "language",
			Name:      "cache_lookups_total",
			Help:      "Language list cache lookups by result.",
		}, []string{"result"}),

		ImportRows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "import",
			Name:      "rows_total",
			Help:      "CSV verse rows committed, by outcome.",
		}, []string{"outcome"}),

		ContentWrites: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "content",
			Name:      "writes_total",
			Help:      "Content entity mutations by entity and action.",
		}, []string{"entity", "action"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// # Nil-safe recorders
//
// Services accept a nil *Metrics so unit tests can skip instrumentation.

// CacheLookup records a language cache hit or miss.
func (m *Metrics) CacheLookup(result string) {
	if m == nil {
		return
	}
	m.LanguageCache.WithLabelValues(result).Inc()
}

// ImportRow records the outcome of one committed CSV row.
func (m *Metrics) ImportRow(outcome string) {
	if m == nil {
		return
	}
	m.ImportRows.WithLabelValues(outcome).Inc()
}

// ContentWrite records a create, update or delete of a content entity.
func (m *Metrics) ContentWrite(entity, action string) {
	if m == nil {
		return
	}
	m.ContentWrites.WithLabelValues(entity, action).Inc()
}
