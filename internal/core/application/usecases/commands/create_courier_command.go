package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// CreateCourierCommand represents a request to register a new courier.
// The courier id is generated by the domain; the handler returns it.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("John Doe", courier.Bicycle)
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory, bounds)
//	id, err := handler.Handle(ctx, cmd)
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name      string
	transport courier.Transport

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand validates that name is not empty and transport belongs to the catalog.
func NewCreateCourierCommand(name string, transport courier.Transport) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setTransport(transport),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// Name returns the courier name from the command.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Transport returns the courier transport from the command.
func (c CreateCourierCommand) Transport() courier.Transport {
	return c.transport
}

func (c *CreateCourierCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setTransport(transport courier.Transport) error {
	if err := transport.Validate(); err != nil {
		return err
	}

	c.transport = transport
	return nil
}
