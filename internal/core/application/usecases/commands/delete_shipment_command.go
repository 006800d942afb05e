package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to remove a shipment.
// Only shipments that have not yet entered processing can be removed.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to remove the given shipment.
func NewDeleteShipmentCommand(shipmentID kernel.UUID) (DeleteShipmentCommand, error) {
	cmd := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to remove.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c *DeleteShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}
