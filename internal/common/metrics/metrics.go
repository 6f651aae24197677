// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
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

	CareerMatchPercentage = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "career_match_percentage",
			Help:    "Distribution of top-ranked career match percentages",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	ScamVerdicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scam_verdicts_total",
			Help: "Total scam analyses by verdict label",
		},
		[]string{"verdict"},
	)

	RefdataCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refdata_cache_hits_total",
			Help: "Reference data cache hits by catalog and layer",
		},
		[]string{"catalog", "layer"},
	)

	RefdataCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refdata_cache_misses_total",
			Help: "Reference data cache misses by catalog",
		},
		[]string{"catalog"},
	)
)
