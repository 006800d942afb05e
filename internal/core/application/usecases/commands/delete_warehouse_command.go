package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteWarehouseCommandIsNotConstructed = errors.New(
	"DeleteWarehouseCommand must be created via NewDeleteWarehouseCommand constructor",
)

// DeleteWarehouseCommand represents a request to remove a warehouse.
// Warehouses still referenced by undelivered shipments cannot be removed.
type DeleteWarehouseCommand struct { //nolint:recvcheck //using for validation
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteWarehouseCommand creates a command to remove the given warehouse.
func NewDeleteWarehouseCommand(warehouseID kernel.UUID) (DeleteWarehouseCommand, error) {
	cmd := DeleteWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWarehouseID(warehouseID); err != nil {
		return DeleteWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWarehouseCommandIsNotConstructed)
}

// WarehouseID returns the identifier of the warehouse to remove.
func (c DeleteWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *DeleteWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
