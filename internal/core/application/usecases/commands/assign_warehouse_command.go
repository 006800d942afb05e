package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrAssignWarehouseCommandIsNotConstructed = errors.New(
	"AssignWarehouseCommand must be created via NewAssignWarehouseCommand constructor",
)

// AssignWarehouseCommand represents a request to route a shipment through a
// specific warehouse. The shipment must not have entered the warehouse stage yet.
type AssignWarehouseCommand struct { //nolint:recvcheck //using for validation
	shipmentID  kernel.UUID
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWarehouseCommand creates a command to route a shipment through the
// given warehouse.
func NewAssignWarehouseCommand(shipmentID, warehouseID kernel.UUID) (AssignWarehouseCommand, error) {
	cmd := AssignWarehouseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setWarehouseID(warehouseID),
	); err != nil {
		return AssignWarehouseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWarehouseCommand) Validate() error {
	return c.guard.Validate(ErrAssignWarehouseCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to route.
func (c AssignWarehouseCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// WarehouseID returns the identifier of the chosen warehouse.
func (c AssignWarehouseCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

func (c *AssignWarehouseCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AssignWarehouseCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	c.warehouseID = warehouseID
	return nil
}
