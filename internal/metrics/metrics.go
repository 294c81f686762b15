// Package metrics defines the Prometheus collectors for the search core,
// grounded on the teacher's pkg/metrics.New. Unlike the teacher, this
// package exposes no HTTP scrape server of its own (there is no network
// transport in scope); an embedding caller mounts Handler() wherever it
// runs its own server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors holds the Prometheus collectors the search core reports to.
type Collectors struct {
	QueriesTotal      *prometheus.CounterVec
	QueryLatency      prometheus.Histogram
	DocsIndexedTotal  prometheus.Counter
	DocsRemovedTotal  prometheus.Counter
	DuplicatesRemoved prometheus.Counter
	LiveDocuments     prometheus.Gauge
	NoResultRate      prometheus.Gauge
}

// New creates and registers a fresh set of collectors against reg. Passing
// a non-default registry (e.g. prometheus.NewRegistry()) keeps repeated
// engine construction in tests from panicking on duplicate registration.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total FindTopDocuments calls by result type (MatchDocument calls are not counted).",
			},
			[]string{"result_type"},
		),
		QueryLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_query_latency_seconds",
				Help:    "Query execution latency in seconds.",
				Buckets: prometheus.DefBuckets,
			},
		),
		DocsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "search_docs_indexed_total",
				Help: "Total documents added to the index.",
			},
		),
		DocsRemovedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "search_docs_removed_total",
				Help: "Total documents removed from the index.",
			},
		),
		DuplicatesRemoved: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "search_duplicates_removed_total",
				Help: "Total documents removed by RemoveDuplicates.",
			},
		),
		LiveDocuments: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "search_live_documents",
				Help: "Current number of live documents in the index.",
			},
		),
		NoResultRate: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "search_no_result_requests",
				Help: "Current count of zero-result queries in the rolling request window.",
			},
		),
	}
	reg.MustRegister(
		c.QueriesTotal,
		c.QueryLatency,
		c.DocsIndexedTotal,
		c.DocsRemovedTotal,
		c.DuplicatesRemoved,
		c.LiveDocuments,
		c.NoResultRate,
	)
	return c
}

// Handler returns an HTTP handler an embedding caller can mount to expose
// the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
