package commands

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

// MoveCouriersCommandHandler advances every Assigned order's courier by one step.
// On arrival the order is completed and the courier becomes Ready again.
//
// Example:
//
//	handler := NewMoveCouriersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, NewMoveCouriersCommand()); err != nil {
//	    return fmt.Errorf("courier movement failed: %w", err)
//	}
type MoveCouriersCommandHandler struct {
	uowFactory UoWFactory
}

// NewMoveCouriersCommandHandler creates a handler for courier movement operations.
func NewMoveCouriersCommandHandler(uowFactory UoWFactory) MoveCouriersCommandHandler {
	return MoveCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves all delivering couriers within a single transaction.
func (h *MoveCouriersCommandHandler) Handle(ctx context.Context, cmd MoveCouriersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	ordersRepo := uow.OrderRepository()

	orders, err := ordersRepo.GetAllAssigned(ctx)
	if err != nil {
		return err
	}

	for _, orderEntity := range orders {
		courierID := orderEntity.CourierID()
		if courierID == nil {
			return fmt.Errorf("order %s is assigned without a courier", orderEntity.ID())
		}

		courierEntity, courierErr := courierRepo.Get(ctx, *courierID)
		if courierErr != nil {
			return courierErr
		}

		if err = h.moveOrderCourier(orderEntity, courierEntity); err != nil {
			return err
		}

		if err = ordersRepo.Update(ctx, orderEntity); err != nil {
			return err
		}

		if err = courierRepo.Update(ctx, courierEntity); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// moveOrderCourier moves the courier toward the order location and completes
// both aggregates when it arrives.
func (h *MoveCouriersCommandHandler) moveOrderCourier(
	orderEntity *order.Order,
	courierEntity *courier.Courier,
) error {
	if err := courierEntity.Move(orderEntity.Location()); err != nil {
		return err
	}

	if arrived, err := courierEntity.Location().IsEqual(orderEntity.Location()); err != nil || !arrived {
		return err
	}

	if err := orderEntity.Complete(); err != nil {
		return err
	}

	courierEntity.CompleteOrder()
	return nil
}
