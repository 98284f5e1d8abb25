package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/metrics"
)

// MoveCouriersHandler runs one movement step for all busy couriers.
type MoveCouriersHandler interface {
	Handle(ctx context.Context, cmd commands.MoveCouriersCommand) error
}

// CourierMovementJob moves every busy courier one step toward its order and
// completes the deliveries that arrive.
type CourierMovementJob struct {
	*scheduledJob
	handler MoveCouriersHandler
}

// NewCourierMovementJob creates the movement job. An empty schedule means DefaultSchedule.
func NewCourierMovementJob(
	handler MoveCouriersHandler,
	schedule string,
	m *metrics.Jobs,
	logger *slog.Logger,
) *CourierMovementJob {
	job := &CourierMovementJob{handler: handler}
	job.scheduledJob = newScheduledJob("courier_movement_job", schedule, job.move, m, logger)
	return job
}

func (j *CourierMovementJob) move(ctx context.Context) (string, error) {
	if err := j.handler.Handle(ctx, commands.NewMoveCouriersCommand()); err != nil {
		return "", err
	}
	return metrics.OutcomeDone, nil
}
