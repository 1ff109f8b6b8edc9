package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds all Prometheus metrics for the application
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Business metrics
	TweetsCreated   prometheus.Counter
	TweetsDeleted   prometheus.Counter
	EdgesReconciled prometheus.Counter
	FeedsAssembled  prometheus.Counter
}

// NewCollector creates a metrics collector with its own registry so tests can
// instantiate it repeatedly without duplicate-registration panics.
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		TweetsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tweets_created_total",
				Help:      "Total number of tweets created",
			},
		),
		TweetsDeleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tweets_deleted_total",
				Help:      "Total number of tweets soft-deleted",
			},
		),
		EdgesReconciled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "edges_reconciled_total",
				Help:      "Total number of reconciliation passes over tweet content",
			},
		),
		FeedsAssembled: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "feeds_assembled_total",
				Help:      "Total number of feed reads",
			},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.TweetsCreated,
		c.TweetsDeleted,
		c.EdgesReconciled,
		c.FeedsAssembled,
	)

	return c
}

// Handler exposes the collector's registry for the /metrics endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
