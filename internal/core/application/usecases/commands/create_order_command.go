package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
)

// CreateOrderCommand represents a request to create a new delivery order.
// The street is kept for the caller's records; the destination on the grid
// is chosen by the handler.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "123 Main Street", 3)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, bounds)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	street  string
	weight  kernel.Weight

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order id, a non-empty street and a weight
// between 1 and courier.MaxCapacity.
func NewCreateOrderCommand(orderID kernel.UUID, street string, weight int) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setStreet(street),
		orderCommand.setWeight(weight),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Street returns the delivery destination street address.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// Weight returns the order weight.
func (c CreateOrderCommand) Weight() kernel.Weight {
	return c.weight
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return ErrStreetIsRequired
	}

	c.street = street
	return nil
}

func (c *CreateOrderCommand) setWeight(value int) error {
	weight, err := kernel.NewWeight(value)
	if err != nil {
		return err
	}

	if limit := courier.MaxCapacity(); !weight.LessOrEqual(limit) {
		return errs.NewValueIsOutOfRangeError("weight", value, 1, limit.Value())
	}

	c.weight = weight
	return nil
}
