package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// quake query service.
type Metrics struct {
	Queries       *prometheus.CounterVec // labels: kind={magnitude,location}, outcome={success,invalid,transport,decode,malformed}
	RowsFlattened prometheus.Counter

	// Upstream catalog metrics.
	UpstreamDuration *prometheus.HistogramVec // labels: kind={magnitude,location}
	UpstreamCache    *prometheus.CounterVec   // labels: result={hit,miss}

	// Feed poller metrics.
	PollerRunning prometheus.Gauge
	RowsPublished prometheus.Counter
	PollErrors    prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "queries_total",
			Help:      "Catalog queries by kind and outcome.",
		}, []string{"kind", "outcome"}),
		RowsFlattened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "rows_flattened_total",
			Help:      "Total event rows produced by flattening.",
		}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quake_query",
			Name:      "upstream_duration_seconds",
			Help:      "USGS catalog request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"kind"}),
		UpstreamCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "upstream_cache_total",
			Help:      "Response cache lookups by result.",
		}, []string{"result"}),
		PollerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_query",
			Name:      "poller_running",
			Help:      "1 when the feed poller is active, 0 when shut down.",
		}),
		RowsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "rows_published_total",
			Help:      "Total event rows written to the sink topic.",
		}),
		PollErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_query",
			Name:      "poll_errors_total",
			Help:      "Total failed poll cycles.",
		}),
	}

	prometheus.MustRegister(
		m.Queries,
		m.RowsFlattened,
		m.UpstreamDuration,
		m.UpstreamCache,
		m.PollerRunning,
		m.RowsPublished,
		m.PollErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Queries:          prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_query", Name: "queries_total"}, []string{"kind", "outcome"}),
		RowsFlattened:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_query", Name: "rows_flattened_total"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "quake_query", Name: "upstream_duration_seconds"}, []string{"kind"}),
		UpstreamCache:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "quake_query", Name: "upstream_cache_total"}, []string{"result"}),
		PollerRunning:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "quake_query", Name: "poller_running"}),
		RowsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_query", Name: "rows_published_total"}),
		PollErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "quake_query", Name: "poll_errors_total"}),
	}
}
