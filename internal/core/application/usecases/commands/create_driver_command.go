package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrDriverNameIsRequired    = errors.New("driver name is required")
	ErrDriverEmailIsInvalid    = errors.New("driver email is invalid")
	ErrCommissionRateIsInvalid = errors.New("commission rate must be between 0 and 1")
	ErrVehicleNumberIsRequired = errors.New("vehicle number is required")
	ErrLicenseNumberIsRequired = errors.New("license number is required")
)

// CreateDriverCommand represents a request to register a new delivery driver.
// A zero commission rate means the system default applies.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID       kernel.UUID
	name           string
	email          string
	phone          string
	vehicleNumber  string
	licenseNumber  string
	commissionRate float64

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
// Validates the identifier, name, email shape, vehicle and license numbers
// and the commission rate bounds.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	name, email, phone, vehicleNumber, licenseNumber string,
	commissionRate float64,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setVehicleNumber(vehicleNumber),
		cmd.setLicenseNumber(licenseNumber),
		cmd.setCommissionRate(commissionRate),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	cmd.phone = phone

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the unique identifier for the driver.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Name returns the driver's name.
func (c CreateDriverCommand) Name() string {
	return c.name
}

// Email returns the driver's unique email address.
func (c CreateDriverCommand) Email() string {
	return c.email
}

// Phone returns the driver's phone number, possibly empty.
func (c CreateDriverCommand) Phone() string {
	return c.phone
}

// VehicleNumber returns the registration number of the driver's vehicle.
func (c CreateDriverCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// LicenseNumber returns the driver's license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// CommissionRate returns the per-delivery commission rate, zero when the
// system default should apply.
func (c CreateDriverCommand) CommissionRate() float64 {
	return c.commissionRate
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setName(name string) error {
	if name == "" {
		return ErrDriverNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateDriverCommand) setEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return ErrDriverEmailIsInvalid
	}

	c.email = email
	return nil
}

func (c *CreateDriverCommand) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}

	c.vehicleNumber = vehicleNumber
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}

func (c *CreateDriverCommand) setCommissionRate(commissionRate float64) error {
	if commissionRate < 0 || commissionRate > 1 {
		return ErrCommissionRateIsInvalid
	}

	c.commissionRate = commissionRate
	return nil
}
