package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates orders at a random location inside the
// configured grid, in status Created.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.DefaultBounds())
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "456 Oak Avenue", 2)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bounds     kernel.Bounds
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, bounds kernel.Bounds) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		bounds:     bounds,
	}
}

// Handle processes the order creation command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := h.bounds.RandomLocation()
	if err != nil {
		return err
	}

	orderEntity, err := order.NewOrder(cmd.OrderID(), location, cmd.Weight())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, orderEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
