package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ledger"
	"freight/internal/core/domain/model/notification"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

var (
	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrWarehouseNotAssigned  = errors.New("shipment has no warehouse assigned")
	ErrShipmentHasNoDriver   = errors.New("shipment has no driver assigned")
	ErrAssignedWarehouseGone = errors.New("assigned warehouse not found")
)

// TransitionShipmentCommandHandler orchestrates shipment status transitions.
// Beyond moving the aggregate itself it keeps the rest of the system in step:
// warehouse loads, driver availability, the commission ledger and merchant
// notifications all change inside the same transaction.
//
// Example:
//
//	handler := NewTransitionShipmentCommandHandler(uowFactory)
//	cmd, _ := NewTransitionShipmentCommand(shipmentID, shipment.Delivered, "", nil, &driverID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrShipmentNotFound):
//	    log.Println("Unknown shipment")
//	case errors.Is(err, shipment.ErrInvalidStatusTransition):
//	    log.Println("Move not allowed from current status")
//	case err != nil:
//	    log.Printf("Transition failed: %v", err)
//	}
type TransitionShipmentCommandHandler struct {
	uowFactory TransitionUoWFactory
}

// NewTransitionShipmentCommandHandler creates a handler for shipment transition operations.
// Requires a TransitionUoWFactory for coordinating updates across all affected aggregates.
func NewTransitionShipmentCommandHandler(uowFactory TransitionUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// Locks the shipment row, applies the status change through the aggregate, and
// performs the side effects the new status implies. A request that names the
// shipment's current status is a no-op and succeeds without writing anything.
func (h TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) error {
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

	priorStatus := aggregate.Status()
	if priorStatus == cmd.TargetStatus() {
		return nil
	}

	if cmd.TargetStatus() == shipment.InWarehouse && aggregate.WarehouseID() == nil {
		return ErrWarehouseNotAssigned
	}

	now := time.Now().UTC()

	if err = aggregate.TransitionTo(cmd.TargetStatus(), cmd.Notes(), cmd.Location(), cmd.ActorID(), now); err != nil {
		return err
	}

	if err = h.adjustWarehouseLoad(ctx, uow, aggregate, priorStatus); err != nil {
		return err
	}

	if err = h.settleDriver(ctx, uow, aggregate, now); err != nil {
		return err
	}

	if err = h.notifyMerchant(ctx, uow, aggregate, now); err != nil {
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

// adjustWarehouseLoad keeps the warehouse occupancy counter in step with the
// shipment's movement. Entering the warehouse takes a slot and may fail on a
// full warehouse; leaving releases one. A counter already at zero is left
// alone rather than driven negative.
func (h TransitionShipmentCommandHandler) adjustWarehouseLoad(
	ctx context.Context,
	uow TransitionUoW,
	aggregate *shipment.Shipment,
	priorStatus shipment.Status,
) error {
	entering := aggregate.Status() == shipment.InWarehouse
	leaving := priorStatus == shipment.InWarehouse

	if !entering && !leaving {
		return nil
	}

	if aggregate.WarehouseID() == nil {
		if leaving {
			return nil
		}
		return ErrWarehouseNotAssigned
	}

	warehouseRepo := uow.WarehouseRepository()

	wh, err := warehouseRepo.GetForUpdate(ctx, *aggregate.WarehouseID())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAssignedWarehouseGone, err)
	}

	if entering {
		if err = wh.AdjustLoad(1); err != nil {
			return err
		}
	} else if wh.CurrentLoad() > 0 {
		if err = wh.AdjustLoad(-1); err != nil {
			return err
		}
	}

	return warehouseRepo.Update(ctx, wh)
}

// settleDriver releases the driver when the shipment reaches a terminal
// status and records the delivery commission in the ledger.
func (h TransitionShipmentCommandHandler) settleDriver(
	ctx context.Context,
	uow TransitionUoW,
	aggregate *shipment.Shipment,
	now time.Time,
) error {
	if !aggregate.Status().IsTerminal() {
		return nil
	}

	if aggregate.DriverID() == nil {
		if aggregate.Status() == shipment.Delivered {
			return ErrShipmentHasNoDriver
		}
		return nil
	}

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.Get(ctx, *aggregate.DriverID())
	if err != nil {
		return err
	}

	if aggregate.Status() == shipment.Delivered {
		commission, commissionErr := aggregate.ShippingCost().MultiplyRate(drv.CommissionRate())
		if commissionErr != nil {
			return commissionErr
		}

		shipmentID := aggregate.ID()
		entry, txErr := ledger.NewTransaction(
			kernel.NewUUID(),
			drv.ID(),
			&shipmentID,
			ledger.TransactionCommission,
			commission,
			fmt.Sprintf("Delivery commission for %s", aggregate.TrackingNumber()),
			now,
		)
		if txErr != nil {
			return txErr
		}

		if err = uow.TransactionRepository().Add(ctx, entry); err != nil {
			return err
		}
	}

	drv.MarkAvailable()

	return driverRepo.Update(ctx, drv)
}

// notifyMerchant records a status change notification for the merchant inside
// the same transaction as the change itself.
func (h TransitionShipmentCommandHandler) notifyMerchant(
	ctx context.Context,
	uow TransitionUoW,
	aggregate *shipment.Shipment,
	now time.Time,
) error {
	note, err := notification.NewNotification(
		kernel.NewUUID(),
		aggregate.MerchantID(),
		"Shipment status updated",
		fmt.Sprintf("Shipment %s is now %s", aggregate.TrackingNumber(), aggregate.Status()),
		notification.TypeShipmentStatus,
		fmt.Sprintf("/shipments/%s", aggregate.TrackingNumber()),
		now,
	)
	if err != nil {
		return err
	}

	return uow.NotificationRepository().Add(ctx, note)
}
