package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/metrics"
)

// AssignOrdersHandler runs one assignment round.
type AssignOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.AssignOrdersCommand) error
}

// CourierAssignmentJob hands the oldest waiting order to the best ready courier
// on every tick.
type CourierAssignmentJob struct {
	*scheduledJob
	handler AssignOrdersHandler
}

// NewCourierAssignmentJob creates the assignment job. An empty schedule means DefaultSchedule.
func NewCourierAssignmentJob(
	handler AssignOrdersHandler,
	schedule string,
	m *metrics.Jobs,
	logger *slog.Logger,
) *CourierAssignmentJob {
	job := &CourierAssignmentJob{handler: handler}
	job.scheduledJob = newScheduledJob("courier_assignment_job", schedule, job.assign, m, logger)
	return job
}

// assign treats an empty queue or the lack of a fitting courier as an idle run.
func (j *CourierAssignmentJob) assign(ctx context.Context) (string, error) {
	err := j.handler.Handle(ctx, commands.NewAssignOrdersCommand())
	switch {
	case err == nil:
		return metrics.OutcomeDone, nil
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, commands.ErrNoFreeCouriersFound):
		j.logger.DebugContext(ctx, "nothing to assign", "reason", err)
		return metrics.OutcomeIdle, nil
	default:
		return "", err
	}
}
