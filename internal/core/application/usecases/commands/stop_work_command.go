package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStopWorkCommandIsNotConstructed = errors.New(
	"StopWorkCommand must be created via NewStopWorkCommand constructor",
)

// StopWorkCommand takes a courier off shift. A courier that is delivering
// cannot stop.
type StopWorkCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStopWorkCommand creates the command for the given courier.
func NewStopWorkCommand(courierID kernel.UUID) (StopWorkCommand, error) {
	command := StopWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return StopWorkCommand{}, err
	}
	command.courierID = courierID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StopWorkCommand) Validate() error {
	return c.guard.Validate(ErrStopWorkCommandIsNotConstructed)
}

// CourierID returns the ID of the courier that stops working.
func (c StopWorkCommand) CourierID() kernel.UUID {
	return c.courierID
}
