package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// DefaultSchedule fires every second.
const DefaultSchedule = "* * * * * *"

// Schedules holds the cron specs of the jobs. Specs use the six-field format
// with seconds, descriptors such as "@every 2s" are accepted too.
type Schedules struct {
	Assignment string
	Movement   string
}

// tickFunc performs one run and reports its outcome.
type tickFunc func(ctx context.Context) (string, error)

// scheduledJob runs a tick on a cron schedule. A tick that is still running
// when the next one is due makes the next one skip.
type scheduledJob struct {
	name     string
	schedule string
	tick     tickFunc
	cron     *cron.Cron
	metrics  *metrics.Jobs
	logger   *slog.Logger
}

func newScheduledJob(
	name, schedule string,
	tick tickFunc,
	m *metrics.Jobs,
	logger *slog.Logger,
) *scheduledJob {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	logger = logger.With("component", name)

	return &scheduledJob{
		name:     name,
		schedule: schedule,
		tick:     tick,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger})),
		),
		metrics: m,
		logger:  logger,
	}
}

// Run performs a single tick and records it.
func (j *scheduledJob) Run(ctx context.Context) {
	started := time.Now()
	outcome, err := j.tick(ctx)
	if err != nil {
		outcome = metrics.OutcomeFailed
		j.logger.ErrorContext(ctx, "job run failed", "error", err)
	}
	j.metrics.Observe(j.name, outcome, time.Since(started))
}

// Start schedules the job. Runs use ctx.
func (j *scheduledJob) Start(ctx context.Context) error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(ctx) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(ctx, "job started", "schedule", j.schedule)
	return nil
}

// Stop unschedules the job and waits for a running tick to finish.
func (j *scheduledJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("job stopped")
}

// cronLogger reports cron's own events through slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}
