package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
)

// trackingGenerationAttempts bounds the retry loop that resolves collisions
// between freshly generated tracking numbers or barcodes and existing rows.
const trackingGenerationAttempts = 5

// ErrTrackingNumberCollision is returned when no unique tracking number and
// barcode pair could be generated within the attempt budget.
var ErrTrackingNumberCollision = errors.New("could not generate a unique tracking number")

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Generates a unique tracking number and barcode pair and registers the
// shipment in "NEW" status with its first history entry.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	// Shipment is now created and ready for receipt processing
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Generates tracking identifiers, retrying on collision with existing rows,
// and creates the shipment in "NEW" status. Uses a transaction to ensure the
// shipment and its initial history entry are persisted atomically.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := shipment.NewCustomer(
		cmd.CustomerName(), cmd.CustomerPhone(), cmd.CustomerAddress(), cmd.CustomerCity(),
	)
	if err != nil {
		return err
	}

	declaredValue, shippingCost, codAmount, err := shipmentAmounts(cmd)
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

	shipmentRepo := uow.ShipmentRepository()

	trackingNumber, barcode, err := generateUniqueIdentifiers(ctx, shipmentRepo)
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(),
		trackingNumber,
		barcode,
		cmd.MerchantID(),
		customer,
		cmd.Description(),
		declaredValue,
		shippingCost,
		codAmount,
		cmd.Weight(),
		cmd.Dimensions(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

func shipmentAmounts(cmd CreateShipmentCommand) (declaredValue, shippingCost, codAmount kernel.Money, err error) {
	declaredValue, err = kernel.NewMoney(cmd.DeclaredValue())
	if err != nil {
		return
	}
	shippingCost, err = kernel.NewMoney(cmd.ShippingCost())
	if err != nil {
		return
	}
	codAmount, err = kernel.NewMoney(cmd.CODAmount())
	return
}

// generateUniqueIdentifiers produces a tracking number and barcode pair no
// existing shipment uses. Collisions are practically impossible but cheap to
// rule out, so the pair is checked against storage before use.
func generateUniqueIdentifiers(ctx context.Context, repo ports.ShipmentRepository) (string, string, error) {
	for range trackingGenerationAttempts {
		trackingNumber := shipment.GenerateTrackingNumber()
		barcode := shipment.GenerateBarcode()

		exists, err := repo.ExistsTrackingNumberOrBarcode(ctx, trackingNumber, barcode)
		if err != nil {
			return "", "", err
		}
		if !exists {
			return trackingNumber, barcode, nil
		}
	}

	return "", "", ErrTrackingNumberCollision
}
