package commands

import (
	"context"
	"errors"

	"freight/internal/pkg/errs"
)

// DeleteShipmentCommandHandler handles shipment removal.
// The aggregate decides whether it may be removed: only shipments still in
// "NEW" status qualify, everything later in the lifecycle is kept for audit.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment removal operations.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment removal command.
// Locks the shipment row, checks the aggregate allows removal, and deletes
// the shipment together with its history.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipmentNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.EnsureDeletable(); err != nil {
		return err
	}

	if err = shipmentRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
