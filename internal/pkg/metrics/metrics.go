// Package metrics holds the Prometheus collectors of the dispatch service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dispatch"

// DefaultBuckets provides a common set of histogram buckets in seconds for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Outcomes of a job run.
const (
	OutcomeDone   = "done"
	OutcomeIdle   = "idle"
	OutcomeFailed = "failed"
)

// Jobs records the runs of the scheduled jobs, labelled by job name.
type Jobs struct {
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewJobs registers the job collectors on reg.
func NewJobs(reg prometheus.Registerer) *Jobs {
	factory := promauto.With(reg)

	return &Jobs{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "runs_total",
			Help:      "Number of scheduled job runs by outcome.",
		}, []string{"job", "outcome"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "failures_total",
			Help:      "Number of scheduled job runs that returned an error.",
		}, []string{"job"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "job",
			Name:      "duration_seconds",
			Help:      "Duration of scheduled job runs.",
			Buckets:   DefaultBuckets,
		}, []string{"job"}),
	}
}

// Observe records one run of job that took elapsed and ended with outcome.
func (m *Jobs) Observe(job, outcome string, elapsed time.Duration) {
	m.runs.WithLabelValues(job, outcome).Inc()
	if outcome == OutcomeFailed {
		m.failures.WithLabelValues(job).Inc()
	}
	m.duration.WithLabelValues(job).Observe(elapsed.Seconds())
}
