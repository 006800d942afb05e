package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/driver"
)

// ErrDriverEmailTaken is returned when another driver already uses the email.
var ErrDriverEmailTaken = errors.New("driver email is already taken")

// CreateDriverCommandHandler handles driver registration.
// New drivers start active and available with no known location. When the
// command carries no commission rate, the configured default is used.
type CreateDriverCommandHandler struct {
	uowFactory            DriverUoWFactory
	defaultCommissionRate float64
}

// NewCreateDriverCommandHandler creates a handler for driver registration operations.
// The default commission rate applies to drivers registered without one.
func NewCreateDriverCommandHandler(
	uowFactory DriverUoWFactory, defaultCommissionRate float64,
) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory:            uowFactory,
		defaultCommissionRate: defaultCommissionRate,
	}
}

// Handle processes the driver registration command.
// Rejects emails another driver already uses.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	commissionRate := cmd.CommissionRate()
	if commissionRate == 0 {
		commissionRate = h.defaultCommissionRate
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	taken, err := driverRepo.ExistsEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if taken {
		return ErrDriverEmailTaken
	}

	aggregate, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.VehicleNumber(), cmd.LicenseNumber(),
		commissionRate,
	)
	if err != nil {
		return err
	}

	if err = driverRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
