package jobs_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/logger"
	"dispatch/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectRuns(t *testing.T, reg *prometheus.Registry, job string, outcomes map[string]int) {
	t.Helper()
	var b strings.Builder
	b.WriteString("# HELP dispatch_job_runs_total Number of scheduled job runs by outcome.\n")
	b.WriteString("# TYPE dispatch_job_runs_total counter\n")
	for _, outcome := range []string{metrics.OutcomeDone, metrics.OutcomeFailed, metrics.OutcomeIdle} {
		if n, ok := outcomes[outcome]; ok {
			fmt.Fprintf(&b, "dispatch_job_runs_total{job=%q,outcome=%q} %d\n", job, outcome, n)
		}
	}
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(b.String()), "dispatch_job_runs_total"))
}

func TestCourierAssignmentJob_Run(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		outcome  string
		failures int
	}{
		{name: "assigned", err: nil, outcome: metrics.OutcomeDone},
		{name: "no order waiting", err: commands.ErrNoOrderFound, outcome: metrics.OutcomeIdle},
		{name: "no fitting courier", err: commands.ErrNoFreeCouriersFound, outcome: metrics.OutcomeIdle},
		{name: "wrapped idle error", err: fmt.Errorf("round: %w", commands.ErrNoOrderFound), outcome: metrics.OutcomeIdle},
		{name: "repository failure", err: errors.New("connection refused"), outcome: metrics.OutcomeFailed, failures: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			reg := prometheus.NewRegistry()
			handler := new(MockAssignOrdersHandler)
			handler.On("Handle", ctx, commands.NewAssignOrdersCommand()).Return(tt.err).Once()

			job := jobs.NewCourierAssignmentJob(handler, "", metrics.NewJobs(reg), logger.Nop())
			job.Run(ctx)

			handler.AssertExpectations(t)
			expectRuns(t, reg, "courier_assignment_job", map[string]int{tt.outcome: 1})
			failures, err := testutil.GatherAndCount(reg, "dispatch_job_failures_total")
			require.NoError(t, err)
			assert.Equal(t, tt.failures, failures)
		})
	}
}

func TestCourierMovementJob_Run(t *testing.T) {
	ctx := t.Context()
	reg := prometheus.NewRegistry()
	handler := new(MockMoveCouriersHandler)
	handler.On("Handle", ctx, commands.NewMoveCouriersCommand()).Return(nil).Once()
	handler.On("Handle", ctx, commands.NewMoveCouriersCommand()).Return(errors.New("deadlock detected")).Once()

	job := jobs.NewCourierMovementJob(handler, "", metrics.NewJobs(reg), logger.Nop())
	job.Run(ctx)
	job.Run(ctx)

	handler.AssertExpectations(t)
	expectRuns(t, reg, "courier_movement_job", map[string]int{
		metrics.OutcomeDone:   1,
		metrics.OutcomeFailed: 1,
	})
}

func TestCourierMovementJob_StartRunsOnSchedule(t *testing.T) {
	ctx := t.Context()
	ran := make(chan struct{}, 10)
	handler := new(MockMoveCouriersHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { ran <- struct{}{} }).
		Return(nil)

	job := jobs.NewCourierMovementJob(handler, "@every 100ms", metrics.NewJobs(prometheus.NewRegistry()), logger.Nop())
	require.NoError(t, job.Start(ctx))
	defer job.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("movement job did not run")
	}
}

func TestJobManager_StartAll(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		manager := jobs.NewJobManager(
			jobs.Schedules{Assignment: jobs.DefaultSchedule, Movement: "every tuesday"},
			new(MockMoveCouriersHandler),
			new(MockAssignOrdersHandler),
			metrics.NewJobs(prometheus.NewRegistry()),
			logger.Nop(),
		)

		err := manager.StartAll(t.Context())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "courier movement job")
	})

	t.Run("should start and stop both jobs", func(t *testing.T) {
		assign := new(MockAssignOrdersHandler)
		assign.On("Handle", mock.Anything, mock.Anything).Return(commands.ErrNoOrderFound).Maybe()
		move := new(MockMoveCouriersHandler)
		move.On("Handle", mock.Anything, mock.Anything).Return(nil).Maybe()

		manager := jobs.NewJobManager(
			jobs.Schedules{},
			move,
			assign,
			metrics.NewJobs(prometheus.NewRegistry()),
			logger.Nop(),
		)

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		require.NoError(t, manager.StartAll(ctx))
		manager.StopAll()
	})
}
