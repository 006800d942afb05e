package commands

import (
	"errors"

	"freight/internal/pkg/guard"
)

var ErrRecalculateWarehouseLoadsCommandIsNotConstructed = errors.New(
	"RecalculateWarehouseLoadsCommand must be created via NewRecalculateWarehouseLoadsCommand constructor",
)

// RecalculateWarehouseLoadsCommand triggers a reconciliation of every
// warehouse's occupancy counter against the shipments actually stored there.
// Incremental adjustments can drift when transitions race or fail midway;
// this command restores the counters to the truth.
type RecalculateWarehouseLoadsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecalculateWarehouseLoadsCommand creates a new command to trigger load reconciliation.
func NewRecalculateWarehouseLoadsCommand() RecalculateWarehouseLoadsCommand {
	return RecalculateWarehouseLoadsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RecalculateWarehouseLoadsCommand) Validate() error {
	return c.guard.Validate(
		ErrRecalculateWarehouseLoadsCommandIsNotConstructed,
	)
}
