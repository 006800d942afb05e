package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand triggers the assignment of an available driver to a
// shipment waiting in a warehouse. This command represents the business
// operation of matching delivery resources with pending shipments.
//
// Example:
//
//	cmd := NewAssignDriverCommand()
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No shipments waiting or no available drivers: %v", err)
//	}
type AssignDriverCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a new command to trigger driver assignment.
// This is a parameterless command that initiates the driver-shipment matching process.
func NewAssignDriverCommand() AssignDriverCommand {
	return AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriverCommandIsNotConstructed if validation fails.
func (c *AssignDriverCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignDriverCommandIsNotConstructed,
	)
}
