package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartWorkCommandIsNotConstructed = errors.New(
	"StartWorkCommand must be created via NewStartWorkCommand constructor",
)

// StartWorkCommand puts a courier on shift so it can receive orders.
//
// Example:
//
//	cmd, err := NewStartWorkCommand(courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//	err = NewStartWorkCommandHandler(uowFactory).Handle(ctx, cmd)
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates the command for the given courier.
func NewStartWorkCommand(courierID kernel.UUID) (StartWorkCommand, error) {
	command := StartWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := courierID.Validate(); err != nil {
		return StartWorkCommand{}, err
	}
	command.courierID = courierID

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// CourierID returns the ID of the courier that starts working.
func (c StartWorkCommand) CourierID() kernel.UUID {
	return c.courierID
}
