package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand represents a request to move a shipment to a new
// lifecycle status. Carries optional notes, the actor performing the change
// and the geographic point where it happened.
//
// Example:
//
//	cmd, err := NewTransitionShipmentCommand(
//	    shipmentID, shipment.Delivered, "left at reception", &location, &driverID,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	targetStatus shipment.Status
	notes        string
	location     *kernel.GeoPoint
	actorID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to move a shipment to the
// given status. Validates the shipment identifier, the target status and, when
// present, the location and actor identifier. Whether the move itself is legal
// is decided by the shipment aggregate, not the command.
func NewTransitionShipmentCommand(
	shipmentID kernel.UUID,
	targetStatus shipment.Status,
	notes string,
	location *kernel.GeoPoint,
	actorID *kernel.UUID,
) (TransitionShipmentCommand, error) {
	cmd := TransitionShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTargetStatus(targetStatus),
		cmd.setLocation(location),
		cmd.setActorID(actorID),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionShipmentCommandIsNotConstructed if validation fails.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to transition.
func (c TransitionShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// TargetStatus returns the requested lifecycle status.
func (c TransitionShipmentCommand) TargetStatus() shipment.Status {
	return c.targetStatus
}

// Notes returns the free-form notes accompanying the transition.
func (c TransitionShipmentCommand) Notes() string {
	return c.notes
}

// Location returns where the transition happened, or nil when unknown.
func (c TransitionShipmentCommand) Location() *kernel.GeoPoint {
	return c.location
}

// ActorID returns who performed the transition, or nil for system actions.
func (c TransitionShipmentCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *TransitionShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *TransitionShipmentCommand) setTargetStatus(targetStatus shipment.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}

func (c *TransitionShipmentCommand) setLocation(location *kernel.GeoPoint) error {
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	c.location = location
	return nil
}

func (c *TransitionShipmentCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}

	c.actorID = actorID
	return nil
}
