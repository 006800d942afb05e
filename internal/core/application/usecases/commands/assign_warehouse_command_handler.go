package commands

import (
	"context"
	"errors"

	"freight/internal/pkg/errs"
)

var (
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrWarehouseInactive = errors.New("warehouse is not active")
)

// AssignWarehouseCommandHandler routes a shipment through a warehouse.
// The warehouse must exist and be active; the shipment must still be early
// enough in its lifecycle to accept a routing decision.
type AssignWarehouseCommandHandler struct {
	uowFactory ShipmentWarehouseUoWFactory
}

// NewAssignWarehouseCommandHandler creates a handler for warehouse routing operations.
func NewAssignWarehouseCommandHandler(uowFactory ShipmentWarehouseUoWFactory) AssignWarehouseCommandHandler {
	return AssignWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse routing command.
// The warehouse's load is not touched here; a slot is only taken when the
// shipment actually transitions into the warehouse.
func (h AssignWarehouseCommandHandler) Handle(ctx context.Context, cmd AssignWarehouseCommand) error {
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
	warehouseRepo := uow.WarehouseRepository()

	aggregate, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrShipmentNotFound
	}
	if err != nil {
		return err
	}

	wh, err := warehouseRepo.Get(ctx, cmd.WarehouseID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrWarehouseNotFound
	}
	if err != nil {
		return err
	}

	if !wh.IsActive() {
		return ErrWarehouseInactive
	}

	if err = aggregate.AssignWarehouse(wh.ID()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
