package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"dispatch/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	courierMovementJob   *CourierMovementJob
	courierAssignmentJob *CourierAssignmentJob
}

// NewJobManager creates the assignment and movement jobs with their schedules.
func NewJobManager(
	schedules Schedules,
	moveCouriersHandler MoveCouriersHandler,
	assignOrdersHandler AssignOrdersHandler,
	m *metrics.Jobs,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierMovementJob:   NewCourierMovementJob(moveCouriersHandler, schedules.Movement, m, logger),
		courierAssignmentJob: NewCourierAssignmentJob(assignOrdersHandler, schedules.Assignment, m, logger),
	}
}

// StartAll starts all scheduled jobs.
// A job that fails to start stops the ones already running.
func (jm *JobManager) StartAll(ctx context.Context) error {
	if err := jm.courierAssignmentJob.Start(ctx); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}

	if err := jm.courierMovementJob.Start(ctx); err != nil {
		jm.courierAssignmentJob.Stop()
		return fmt.Errorf("failed to start courier movement job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ticks.
func (jm *JobManager) StopAll() {
	jm.courierMovementJob.Stop()
	jm.courierAssignmentJob.Stop()
}
