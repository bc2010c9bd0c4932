package prom

import "github.com/prometheus/client_golang/prometheus"

var (
	PipelineDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placepick",
			Subsystem: "pipeline",
			Name:      "decisions_total",
			Help:      "Resolution decisions partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	PipelineDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "placepick",
			Subsystem: "pipeline",
			Name:      "duration_seconds",
			Help:      "End-to-end latency of one resolution pass per input source.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	ResolverQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placepick",
			Subsystem: "resolver",
			Name:      "queries_total",
			Help:      "Search provider queries partitioned by result.",
		},
		[]string{"result"},
	)

	ResolverQuerySeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "placepick",
			Subsystem: "resolver",
			Name:      "query_seconds",
			Help:      "Latency in seconds of individual search provider queries.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	SearchCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placepick",
			Subsystem: "resolver",
			Name:      "cache_total",
			Help:      "Search result cache lookups partitioned by result.",
		},
		[]string{"result"},
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "placepick",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Collaborator API calls partitioned by service and result.",
		},
		[]string{"service", "result"},
	)
)
