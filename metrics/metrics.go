package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_upstream_requests_total",
			Help: "Total number of requests sent to external collaborators",
		},
		[]string{"provider", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planner_upstream_request_duration_seconds",
			Help:    "Duration of requests to external collaborators in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_cache_lookups_total",
			Help: "Place cache lookups by kind and result",
		},
		[]string{"kind", "result"},
	)

	// ShapeDefaults counts collaborator responses whose shape was unexpected and
	// replaced with a default value.
	ShapeDefaults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_malformed_response_defaults_total",
			Help: "Collaborator responses replaced with defaults because of an unexpected shape",
		},
		[]string{"component"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_http_requests_total",
			Help: "HTTP requests served by route and status code",
		},
		[]string{"route", "code"},
	)
)
