package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// StartWorkCommandHandler loads a courier, moves it to Ready and persists it.
//
// Example:
//
//	handler := NewStartWorkCommandHandler(uowFactory)
//	cmd, _ := NewStartWorkCommand(courierID)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, courier.ErrAlreadyStarted) {
//	    // courier is delivering an order
//	}
type StartWorkCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewStartWorkCommandHandler creates a handler for StartWorkCommand.
func NewStartWorkCommandHandler(uowFactory CourierUoWFactory) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the StartWorkCommand within a transaction.
func (h *StartWorkCommandHandler) Handle(ctx context.Context, cmd StartWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeCourier(ctx, h.uowFactory, cmd.CourierID(), (*courier.Courier).StartWork)
}

// StopWorkCommandHandler loads a courier, moves it to NotAvailable and persists it.
type StopWorkCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewStopWorkCommandHandler creates a handler for StopWorkCommand.
func NewStopWorkCommandHandler(uowFactory CourierUoWFactory) StopWorkCommandHandler {
	return StopWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the StopWorkCommand within a transaction.
// Returns courier.ErrIncompleteDelivery while the courier is Busy.
func (h *StopWorkCommandHandler) Handle(ctx context.Context, cmd StopWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeCourier(ctx, h.uowFactory, cmd.CourierID(), (*courier.Courier).StopWork)
}

// changeCourier runs one courier transition inside its own unit of work.
// Rolls back on any error so the stored courier keeps its previous status.
func changeCourier(
	ctx context.Context,
	uowFactory CourierUoWFactory,
	courierID kernel.UUID,
	transition func(*courier.Courier) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	courierEntity, err := courierRepo.Get(ctx, courierID)
	if err != nil {
		return err
	}

	if err = transition(courierEntity); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
