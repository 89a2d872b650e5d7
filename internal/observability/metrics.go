package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcana_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// GenerationRequests counts generation pipeline invocations by task and outcome.
	GenerationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcana_generation_requests_total",
		Help: "Total generation requests by task and outcome kind",
	}, []string{"task", "outcome"})

	// BestEffortDrops counts best-effort tasks dropped because the queue was full.
	BestEffortDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arcana_best_effort_drops_total",
		Help: "Total best-effort background tasks dropped",
	}, []string{"task"})

	// DatabaseQueryLatency records database query latency by statement kind.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "arcana_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
