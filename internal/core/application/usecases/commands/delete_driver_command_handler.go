package commands

import (
	"context"
	"errors"

	"freight/internal/pkg/errs"
)

var (
	ErrDriverNotFound = errors.New("driver not found")
	ErrDriverIsBusy   = errors.New("driver has shipments in progress")
)

// DeleteDriverCommandHandler handles driver removal.
// A driver with any shipment still short of a terminal status cannot be
// removed; the check counts the driver's shipment rows rather than trusting
// the availability flag.
type DeleteDriverCommandHandler struct {
	uowFactory DriverShipmentUoWFactory
}

// NewDeleteDriverCommandHandler creates a handler for driver removal operations.
func NewDeleteDriverCommandHandler(uowFactory DriverShipmentUoWFactory) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver removal command.
func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	aggregate, err := driverRepo.Get(ctx, cmd.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrDriverNotFound
	}
	if err != nil {
		return err
	}

	active, err := uow.ShipmentRepository().CountActiveForDriver(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if active > 0 {
		return ErrDriverIsBusy
	}

	if err = driverRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
