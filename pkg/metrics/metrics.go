// Package metrics defines the Prometheus metric collectors used by the
// organizer service and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	DocumentsIngested    *prometheus.CounterVec
	VersionsAppended     prometheus.Counter
	DocumentsTracked     prometheus.Gauge
	TermsIndexed         prometheus.Gauge
	RelationEdges        prometheus.Gauge
	RelatedQueriesTotal  *prometheus.CounterVec
	CacheHitsTotal       prometheus.Counter
	CacheMissesTotal     prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),
		HTTPRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed.",
			},
		),
		DocumentsIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_ingested_total",
				Help: "Total page payloads ingested by source (http, kafka).",
			},
			[]string{"source"},
		),
		VersionsAppended: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "document_versions_total",
				Help: "Total document versions appended, first versions included.",
			},
		),
		DocumentsTracked: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "documents_tracked",
				Help: "Number of distinct documents in the catalogue.",
			},
		),
		TermsIndexed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "index_terms",
				Help: "Number of distinct terms in the search index.",
			},
		),
		RelationEdges: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "relation_edges",
				Help: "Number of undirected edges in the relationship graph.",
			},
		),
		RelatedQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "related_queries_total",
				Help: "Total related-document queries by cache status (hit, miss, bypass).",
			},
			[]string{"cache_status"},
		),
		CacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of query cache hits.",
			},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of query cache misses.",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPRequestsInFlight,
		m.DocumentsIngested,
		m.VersionsAppended,
		m.DocumentsTracked,
		m.TermsIndexed,
		m.RelationEdges,
		m.RelatedQueriesTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
