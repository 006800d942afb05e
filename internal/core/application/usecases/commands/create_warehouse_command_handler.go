package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/warehouse"
)

// CreateWarehouseCommandHandler handles warehouse registration.
// New warehouses start active with an empty load.
type CreateWarehouseCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateWarehouseCommandHandler creates a handler for warehouse registration operations.
func NewCreateWarehouseCommandHandler(uowFactory WarehouseUoWFactory) CreateWarehouseCommandHandler {
	return CreateWarehouseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the warehouse registration command.
func (h *CreateWarehouseCommandHandler) Handle(ctx context.Context, cmd CreateWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	location, err := kernel.NewGeoPoint(cmd.Latitude(), cmd.Longitude())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := warehouse.NewWarehouse(cmd.WarehouseID(), cmd.Code(), cmd.Name(), cmd.Capacity(), location)
	if err != nil {
		return err
	}

	if err = uow.WarehouseRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
