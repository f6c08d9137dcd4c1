// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AICalls counts completion calls by purpose (chat, reason) and outcome.
	AICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_ai_calls_total",
			Help: "Total number of AI completion calls",
		},
		[]string{"purpose", "outcome"},
	)

	AICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommender_ai_call_duration_seconds",
			Help:    "Duration of AI completion calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30},
		},
		[]string{"purpose"},
	)

	// Fallbacks counts chat turns answered by the rule-based path.
	Fallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_fallbacks_total",
			Help: "Total number of chat turns served by the fallback recommender",
		},
		[]string{"reason"},
	)

	Recommendations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_results_total",
			Help: "Total number of recommendation results by flow and result type",
		},
		[]string{"flow", "type"},
	)

	ReasonCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommender_reason_cache_total",
			Help: "Recommendation reason cache lookups",
		},
		[]string{"result"},
	)

	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)
)
