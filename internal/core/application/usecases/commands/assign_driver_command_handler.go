package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

var (
	ErrNoAvailableDriversFound = errors.New("no available drivers found")
	ErrNoWaitingShipmentFound  = errors.New("no waiting shipment found")
)

// AssignDriverCommandHandler orchestrates the driver assignment process.
// Finds shipments waiting in warehouses and matches them with available
// drivers using the dispatch rules. Ensures transactional consistency when
// updating both shipment and driver states.
//
// Example:
//
//	handler := NewAssignDriverCommandHandler(uowFactory)
//	cmd := NewAssignDriverCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoWaitingShipmentFound):
//	    log.Println("No shipments awaiting a driver")
//	case errors.Is(err, ErrNoAvailableDriversFound):
//	    log.Println("All drivers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Println("Driver assigned successfully")
//	}
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignDriverCommandHandler creates a handler for driver assignment operations.
// Requires a DispatchUoWFactory for coordinating transactional updates across repositories.
func NewAssignDriverCommandHandler(uowFactory DispatchUoWFactory) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver assignment command.
// Retrieves the first shipment waiting in a warehouse, finds available
// drivers, and uses DriverDispatcher to pick the one closest to the pickup
// warehouse. Updates both entities within a single transaction. Returns
// specific errors for no shipments (ErrNoWaitingShipmentFound) or no
// drivers (ErrNoAvailableDriversFound).
func (h AssignDriverCommandHandler) Handle(ctx context.Context, command AssignDriverCommand) error {
	if err := command.Validate(); err != nil {
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
	driverRepo := uow.DriverRepository()
	warehouseRepo := uow.WarehouseRepository()

	aggregate, err := shipmentRepo.GetFirstAwaitingDriver(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoWaitingShipmentFound
	}
	if err != nil {
		return err
	}

	if aggregate.WarehouseID() == nil {
		return ErrWarehouseNotAssigned
	}

	wh, err := warehouseRepo.Get(ctx, *aggregate.WarehouseID())
	if err != nil {
		return err
	}

	drivers, err := driverRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(drivers) == 0 {
		return ErrNoAvailableDriversFound
	}

	assignedDriver, err := services.NewDriverDispatcher().Dispatch(aggregate, wh.Location(), drivers)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = driverRepo.Update(ctx, assignedDriver); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
