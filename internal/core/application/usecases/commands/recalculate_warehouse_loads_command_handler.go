package commands

import (
	"context"
)

// RecalculateWarehouseLoadsCommandHandler reconciles warehouse occupancy
// counters with the number of shipments actually in "IN_WAREHOUSE" status.
// All warehouses are reconciled within a single transaction.
//
// Example:
//
//	handler := NewRecalculateWarehouseLoadsCommandHandler(uowFactory)
//	cmd := NewRecalculateWarehouseLoadsCommand()
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("load reconciliation failed: %w", err)
//	}
//
//	// This would typically be called periodically by a scheduler
type RecalculateWarehouseLoadsCommandHandler struct {
	uowFactory ShipmentWarehouseUoWFactory
}

// NewRecalculateWarehouseLoadsCommandHandler creates a handler for load reconciliation operations.
func NewRecalculateWarehouseLoadsCommandHandler(
	uowFactory ShipmentWarehouseUoWFactory,
) RecalculateWarehouseLoadsCommandHandler {
	return RecalculateWarehouseLoadsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Recounts the shipments stored in each warehouse and rewrites counters that
// drifted. Counts above capacity are clamped so the aggregate's own bounds
// hold even when more shipments were forced in than the warehouse allows.
func (h *RecalculateWarehouseLoadsCommandHandler) Handle(
	ctx context.Context, cmd RecalculateWarehouseLoadsCommand,
) error {
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

	warehouses, err := warehouseRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, wh := range warehouses {
		count, countErr := shipmentRepo.CountInWarehouse(ctx, wh.ID())
		if countErr != nil {
			return countErr
		}

		if count > wh.Capacity() {
			count = wh.Capacity()
		}

		if count == wh.CurrentLoad() {
			continue
		}

		if err = wh.SetLoad(count); err != nil {
			return err
		}

		if err = warehouseRepo.Update(ctx, wh); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
