package prom

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var regOnce sync.Once

// MustRegisterAll registers all Prometheus collectors exactly once.
func MustRegisterAll() {
	regOnce.Do(func() {
		prometheus.MustRegister(
			// pipeline
			PipelineDecisionsTotal,
			PipelineDurationSeconds,

			// resolver
			ResolverQueriesTotal,
			ResolverQuerySeconds,
			SearchCacheTotal,

			// upstream collaborators
			UpstreamRequestsTotal,
		)
	})
}
