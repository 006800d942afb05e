package commands

import (
	"context"
	"errors"

	"freight/internal/pkg/errs"
)

var ErrWarehouseInUse = errors.New("warehouse still holds undelivered shipments")

// DeleteWarehouseCommandHandler handles warehouse removal.
// A warehouse referenced by any shipment that has not been delivered cannot
// be removed, whatever the stored load counter says.
type DeleteWarehouseCommandHandler struct {
	uowFactory ShipmentWarehouseUoWFactory
}

// NewDeleteWarehouseCommandHandler creates a handler for warehouse removal operations.
func NewDeleteWarehouseCommandHandler(uowFactory ShipmentWarehouseUoWFactory) DeleteWarehouseCommandHandler {
	return DeleteWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse removal command.
func (h DeleteWarehouseCommandHandler) Handle(ctx context.Context, cmd DeleteWarehouseCommand) error {
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

	warehouseRepo := uow.WarehouseRepository()

	aggregate, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrWarehouseNotFound
	}
	if err != nil {
		return err
	}

	undelivered, err := uow.ShipmentRepository().CountUndeliveredInWarehouse(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if undelivered > 0 {
		return ErrWarehouseInUse
	}

	if err = warehouseRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
