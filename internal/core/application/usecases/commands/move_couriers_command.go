package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

// MoveCouriersCommand triggers one movement step for every courier that is
// delivering, completing orders whose courier arrives.
//
// Example:
//
//	cmd := NewMoveCouriersCommand()
//	handler := NewMoveCouriersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Movement update failed: %v", err)
//	}
type MoveCouriersCommand struct {
	guard guard.ConstructorGuard
}

var ErrMoveCouriersCommandIsNotConstructed = errors.New(
	"MoveCouriersCommand must be created via NewMoveCouriersCommand constructor",
)

// NewMoveCouriersCommand creates a command to trigger courier movement updates.
func NewMoveCouriersCommand() MoveCouriersCommand {
	return MoveCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MoveCouriersCommand) Validate() error {
	return c.guard.Validate(ErrMoveCouriersCommandIsNotConstructed)
}
