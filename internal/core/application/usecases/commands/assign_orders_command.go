package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrAssignOrdersCommandIsNotConstructed = errors.New(
	"AssignOrdersCommand must be created via NewAssignOrdersCommand constructor",
)

// AssignOrdersCommand triggers the assignment of the oldest waiting order to
// the best available courier.
//
// Example:
//
//	cmd := NewAssignOrdersCommand()
//	handler := NewAssignOrdersCommandHandler(uowFactory, dispatching.NewDispatcher())
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No orders to assign or no available couriers: %v", err)
//	}
type AssignOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignOrdersCommand creates a new command to trigger order assignment.
func NewAssignOrdersCommand() AssignOrdersCommand {
	return AssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
}
