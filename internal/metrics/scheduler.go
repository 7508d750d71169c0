package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulerRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotterywatch",
		Subsystem: "scheduler",
		Name:      "runs_total",
		Help:      "Count of scheduled job runs.",
	}, []string{"job", "status"})

	schedulerRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lotterywatch",
		Subsystem: "scheduler",
		Name:      "run_duration_seconds",
		Help:      "Duration of scheduled job runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job", "status"})
)

// Scheduler tracks metrics for polling jobs.
type Scheduler struct{}

// NewScheduler constructs a Scheduler collector.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// ObserveRun records one job run.
func (Scheduler) ObserveRun(job string, err error, started time.Time) {
	if job == "" {
		job = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerRunsTotal.WithLabelValues(job, status).Inc()
	schedulerRunDuration.WithLabelValues(job, status).Observe(time.Since(started).Seconds())
}
