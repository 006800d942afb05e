package driver

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrDriverIsNotConstructed indicates that a Driver was not created through
// NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver")

// Driver is a delivery agent. Availability is flipped by the lifecycle
// engine: assignment marks the driver busy, a terminal shipment outcome
// marks them available again.
//
// The commission rate is a per-driver parameter in [0, 1] applied to the
// shipping cost of every shipment the driver delivers.
type Driver struct {
	id             kernel.UUID
	name           string
	email          string
	phone          string
	vehicleNumber  string
	licenseNumber  string
	active         bool
	available      bool
	location       *kernel.GeoPoint
	commissionRate float64

	guard kernel.ConstructorGuard
}

// NewDriver creates an active, available Driver with no known location.
func NewDriver(
	id kernel.UUID,
	name, email, phone, vehicleNumber, licenseNumber string,
	commissionRate float64,
) (*Driver, error) {
	d := &Driver{
		active:    true,
		available: true,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setVehicleNumber(vehicleNumber),
		d.setLicenseNumber(licenseNumber),
		d.setCommissionRate(commissionRate),
	); err != nil {
		return nil, err
	}
	d.phone = phone

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence, including its
// availability and last known location.
func RestoreDriver(
	id kernel.UUID,
	name, email, phone, vehicleNumber, licenseNumber string,
	active, available bool,
	location *kernel.GeoPoint,
	commissionRate float64,
) (*Driver, error) {
	d := &Driver{
		active:    active,
		available: available,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setVehicleNumber(vehicleNumber),
		d.setLicenseNumber(licenseNumber),
		d.setCommissionRate(commissionRate),
	); err != nil {
		return nil, err
	}
	d.phone = phone

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
		d.location = location
	}

	return d, nil
}

// Validate ensures the Driver instance was properly constructed.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Email returns the driver's unique email address.
func (d *Driver) Email() string {
	return d.email
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// VehicleNumber returns the driver's vehicle plate number.
func (d *Driver) VehicleNumber() string {
	return d.vehicleNumber
}

// LicenseNumber returns the driver's license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// IsActive reports whether the driver is employed and eligible for work.
func (d *Driver) IsActive() bool {
	return d.active
}

// IsAvailable reports whether the driver can take a new shipment.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// Location returns the driver's last reported position, or nil when
// unknown.
func (d *Driver) Location() *kernel.GeoPoint {
	return d.location
}

// CommissionRate returns the driver's commission rate in [0, 1].
func (d *Driver) CommissionRate() float64 {
	return d.commissionRate
}

// MarkBusy flags the driver as carrying a shipment.
func (d *Driver) MarkBusy() {
	d.available = false
}

// MarkAvailable flags the driver as free for a new assignment.
func (d *Driver) MarkAvailable() {
	d.available = true
}

// MoveTo updates the driver's last reported position.
func (d *Driver) MoveTo(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = &location
	return nil
}

// Deactivate removes the driver from the working pool.
func (d *Driver) Deactivate() {
	d.active = false
	d.available = false
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("driver name")
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("driver email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("driver email", fmt.Errorf("%q is not an email address", email))
	}
	d.email = email
	return nil
}

func (d *Driver) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return errs.NewValueIsRequiredError("vehicle number")
	}
	d.vehicleNumber = vehicleNumber
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return errs.NewValueIsRequiredError("license number")
	}
	d.licenseNumber = licenseNumber
	return nil
}

func (d *Driver) setCommissionRate(commissionRate float64) error {
	if commissionRate < 0 || commissionRate > 1 {
		return errs.NewValueIsOutOfRangeError("commission rate", commissionRate, 0.0, 1.0)
	}
	d.commissionRate = commissionRate
	return nil
}
