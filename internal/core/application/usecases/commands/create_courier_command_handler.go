package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CreateCourierCommandHandler registers couriers at the minimum location of the
// configured grid.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory, kernel.DefaultBounds())
//	cmd, _ := NewCreateCourierCommand("Express Courier", courier.Car)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("courier registration failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	bounds     kernel.Bounds
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, bounds kernel.Bounds) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		bounds:     bounds,
	}
}

// Handle creates the courier and persists it within a transaction.
// Returns the generated courier id.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	spawn, err := h.bounds.MinLocation()
	if err != nil {
		return kernel.UUID{}, err
	}

	courierEntity, err := courier.NewCourierAt(cmd.Name(), cmd.Transport(), spawn)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, courierEntity); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return courierEntity.ID(), nil
}
