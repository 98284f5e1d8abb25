package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/application/dispatching"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrNoOrderFound        = errors.New("no order found")
)

// Dispatcher chooses a courier for an order and assigns it.
type Dispatcher interface {
	Dispatch(o *order.Order, couriers []*courier.Courier) (*courier.Courier, error)
}

// AssignOrdersCommandHandler orchestrates order assignment.
// Both the order and the chosen courier are persisted in one transaction.
//
// Example:
//
//	handler := NewAssignOrdersCommandHandler(uowFactory, dispatching.NewDispatcher())
//	err := handler.Handle(ctx, NewAssignOrdersCommand())
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No pending orders")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignOrdersCommandHandler struct {
	uowFactory UoWFactory
	dispatcher Dispatcher
}

// NewAssignOrdersCommandHandler creates a handler for order assignment.
func NewAssignOrdersCommandHandler(uowFactory UoWFactory, dispatcher Dispatcher) AssignOrdersCommandHandler {
	return AssignOrdersCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle assigns the oldest Created order that a Ready courier can take.
// Orders no courier can carry right now are passed over, so they do not hold
// up lighter orders queued behind them.
// Returns ErrNoOrderFound when nothing waits and ErrNoFreeCouriersFound when no
// Ready courier can take any waiting order.
func (h AssignOrdersCommandHandler) Handle(ctx context.Context, command AssignOrdersCommand) error {
	if err := command.Validate(); err != nil {
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

	created, err := ordersRepo.GetAllCreated(ctx)
	if err != nil {
		return err
	}
	if len(created) == 0 {
		return ErrNoOrderFound
	}

	couriers, err := courierRepo.GetAllReady(ctx)
	if err != nil {
		return err
	}
	if len(couriers) == 0 {
		return ErrNoFreeCouriersFound
	}

	orderEntity, assignedCourier, err := h.dispatchFirst(created, couriers)
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, orderEntity); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, assignedCourier); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// dispatchFirst walks the queue in order and stops at the first order the
// dispatcher places.
func (h AssignOrdersCommandHandler) dispatchFirst(
	queue []*order.Order,
	couriers []*courier.Courier,
) (*order.Order, *courier.Courier, error) {
	for _, o := range queue {
		c, err := h.dispatcher.Dispatch(o, couriers)
		if errors.Is(err, dispatching.ErrCourierNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		return o, c, nil
	}

	return nil, nil, ErrNoFreeCouriersFound
}
