package shipment

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrDriverNotAssigned indicates an attempt to move a shipment to
	// WithDriver (or Delivered) without an assigned driver.
	ErrDriverNotAssigned = errors.New("shipment has no assigned driver")

	// ErrShipmentNotDeletable indicates a delete attempt on a shipment that
	// has left the New status.
	ErrShipmentNotDeletable = errors.New("shipment can only be deleted while in NEW status")

	// ErrDriverNotAssignable indicates a driver assignment attempt in a
	// status that does not accept one.
	ErrDriverNotAssignable = errors.New("driver cannot be assigned in the current status")

	// ErrWarehouseNotAssignable indicates a warehouse assignment attempt
	// after the shipment already reached the warehouse stage.
	ErrWarehouseNotAssignable = errors.New("warehouse cannot be assigned in the current status")
)

// Shipment is the aggregate root of the freight domain. It owns the status
// state machine and the append-only status history, and carries the
// commercial attributes declared by the merchant.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier, tracking number, barcode, and merchant
//   - Status transitions follow the allowed-transition table (see Status)
//   - The last history entry's status always equals the current status
//   - Pickup time is set once, on the first entry into WithDriver
//   - Delivery time is set on the transition into Delivered
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	id             kernel.UUID
	trackingNumber string
	barcode        string
	merchantID     kernel.UUID
	driverID       *kernel.UUID
	warehouseID    *kernel.UUID

	customer      Customer
	description   string
	declaredValue kernel.Money
	shippingCost  kernel.Money
	codAmount     kernel.Money
	weight        float64
	dimensions    string

	status      Status
	createdAt   time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	history     []HistoryEntry

	guard kernel.ConstructorGuard
}

// NewShipment creates a new Shipment in status New and appends the initial
// history entry, attributed to the owning merchant, atomically with
// construction. All validations are aggregated with errors.Join.
func NewShipment(
	id kernel.UUID,
	trackingNumber string,
	barcode string,
	merchantID kernel.UUID,
	customer Customer,
	description string,
	declaredValue kernel.Money,
	shippingCost kernel.Money,
	codAmount kernel.Money,
	weight float64,
	dimensions string,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:    New,
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setBarcode(barcode),
		s.setMerchantID(merchantID),
		s.setCustomer(customer),
		s.setDescription(description),
		s.setDeclaredValue(declaredValue),
		s.setShippingCost(shippingCost),
		s.setCODAmount(codAmount),
		s.setWeight(weight),
	); err != nil {
		return nil, err
	}
	s.dimensions = dimensions

	actor := merchantID
	entry, err := NewHistoryEntry(kernel.NewUUID(), New, "Shipment created", nil, &actor, createdAt)
	if err != nil {
		return nil, err
	}
	s.history = append(s.history, entry)

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence, including its
// assignment state, timestamps, and ordered history. No history entry is
// appended. When history is present, its last entry must carry the restored
// status.
func RestoreShipment(
	id kernel.UUID,
	trackingNumber string,
	barcode string,
	merchantID kernel.UUID,
	driverID *kernel.UUID,
	warehouseID *kernel.UUID,
	customer Customer,
	description string,
	declaredValue kernel.Money,
	shippingCost kernel.Money,
	codAmount kernel.Money,
	weight float64,
	dimensions string,
	status Status,
	createdAt time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
	history []HistoryEntry,
) (*Shipment, error) {
	s := &Shipment{
		createdAt: createdAt,
		guard:     kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setTrackingNumber(trackingNumber),
		s.setBarcode(barcode),
		s.setMerchantID(merchantID),
		s.setCustomer(customer),
		s.setDescription(description),
		s.setDeclaredValue(declaredValue),
		s.setShippingCost(shippingCost),
		s.setCODAmount(codAmount),
		s.setWeight(weight),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	s.dimensions = dimensions
	s.status = status
	s.pickedUpAt = pickedUpAt
	s.deliveredAt = deliveredAt

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		s.driverID = driverID
	}
	if warehouseID != nil {
		if err := warehouseID.Validate(); err != nil {
			return nil, err
		}
		s.warehouseID = warehouseID
	}

	for _, entry := range history {
		if err := entry.Validate(); err != nil {
			return nil, err
		}
	}
	if len(history) > 0 && history[len(history)-1].Status() != status {
		return nil, errs.NewValueIsInvalidError("history")
	}
	s.history = append(s.history, history...)

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrackingNumber returns the unique public tracking number.
func (s *Shipment) TrackingNumber() string {
	return s.trackingNumber
}

// Barcode returns the unique warehouse barcode.
func (s *Shipment) Barcode() string {
	return s.barcode
}

// MerchantID returns the owning merchant's identifier.
func (s *Shipment) MerchantID() kernel.UUID {
	return s.merchantID
}

// DriverID returns the assigned driver's identifier, or nil when no driver
// is assigned.
func (s *Shipment) DriverID() *kernel.UUID {
	return s.driverID
}

// WarehouseID returns the assigned warehouse's identifier, or nil when no
// warehouse is assigned.
func (s *Shipment) WarehouseID() *kernel.UUID {
	return s.warehouseID
}

// Customer returns the recipient's contact details.
func (s *Shipment) Customer() Customer {
	return s.customer
}

// Description returns the merchant's description of the contents.
func (s *Shipment) Description() string {
	return s.description
}

// DeclaredValue returns the declared value of the contents.
func (s *Shipment) DeclaredValue() kernel.Money {
	return s.declaredValue
}

// ShippingCost returns the shipping cost, the base for driver commission.
func (s *Shipment) ShippingCost() kernel.Money {
	return s.shippingCost
}

// CODAmount returns the cash-on-delivery amount.
func (s *Shipment) CODAmount() kernel.Money {
	return s.codAmount
}

// Weight returns the package weight in kilograms.
func (s *Shipment) Weight() float64 {
	return s.weight
}

// Dimensions returns the free-text package dimensions.
func (s *Shipment) Dimensions() string {
	return s.dimensions
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// CreatedAt returns the creation time.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// PickedUpAt returns when the shipment first went out with a driver, or nil.
func (s *Shipment) PickedUpAt() *time.Time {
	return s.pickedUpAt
}

// DeliveredAt returns the delivery time, or nil while undelivered.
func (s *Shipment) DeliveredAt() *time.Time {
	return s.deliveredAt
}

// History returns a copy of the ordered status history. The last entry's
// status equals the current status.
func (s *Shipment) History() []HistoryEntry {
	history := make([]HistoryEntry, len(s.history))
	copy(history, s.history)
	return history
}

// TransitionTo moves the shipment to the target status, stamps lifecycle
// timestamps, and appends a history entry — all on the in-memory aggregate;
// callers persist the result within one transaction.
//
// Business rules enforced:
//   - The target must be reachable per the allowed-transition table
//   - A transition to the current status is a no-op (no entry, no error)
//   - WithDriver and Delivered require an assigned driver
//   - Pickup time is stamped only on the first entry into WithDriver
//   - Delivery time is stamped on entry into Delivered
//
// Returns an error wrapping ErrInvalidStatusTransition or
// ErrDriverNotAssigned when a rule is violated; the aggregate is left
// unchanged on error.
func (s *Shipment) TransitionTo(
	target Status,
	notes string,
	location *kernel.GeoPoint,
	actorID *kernel.UUID,
	at time.Time,
) error {
	if target == s.status {
		return nil
	}

	newStatus, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if (newStatus == WithDriver || newStatus == Delivered) && s.driverID == nil {
		return ErrDriverNotAssigned
	}

	entry, err := NewHistoryEntry(kernel.NewUUID(), newStatus, notes, location, actorID, at)
	if err != nil {
		return err
	}

	s.status = newStatus
	switch newStatus {
	case WithDriver:
		if s.pickedUpAt == nil {
			pickedUp := at
			s.pickedUpAt = &pickedUp
		}
	case Delivered:
		delivered := at
		s.deliveredAt = &delivered
	}
	s.history = append(s.history, entry)

	return nil
}

// AssignDriver binds a driver to the shipment. Allowed while the shipment is
// not yet out for delivery and not terminal; a failed delivery may be
// reassigned for retry.
func (s *Shipment) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	if s.status.IsTerminal() || s.status == WithDriver {
		return fmt.Errorf("%w: %s", ErrDriverNotAssignable, s.status)
	}

	s.driverID = &driverID
	return nil
}

// AssignWarehouse binds a warehouse to the shipment. Allowed only before the
// shipment reaches the warehouse stage.
func (s *Shipment) AssignWarehouse(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	if s.status != New && s.status != InReceipt {
		return fmt.Errorf("%w: %s", ErrWarehouseNotAssignable, s.status)
	}

	s.warehouseID = &warehouseID
	return nil
}

// EnsureDeletable verifies the shipment may be hard-deleted. Deletion is
// only permitted while the status is still New.
func (s *Shipment) EnsureDeletable() error {
	if s.status != New {
		return fmt.Errorf("%w: current status is %s", ErrShipmentNotDeletable, s.status)
	}
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setTrackingNumber(trackingNumber string) error {
	if trackingNumber == "" {
		return errs.NewValueIsRequiredError("tracking number")
	}
	s.trackingNumber = trackingNumber
	return nil
}

func (s *Shipment) setBarcode(barcode string) error {
	if barcode == "" {
		return errs.NewValueIsRequiredError("barcode")
	}
	s.barcode = barcode
	return nil
}

func (s *Shipment) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return fmt.Errorf("merchant: %w", err)
	}
	s.merchantID = merchantID
	return nil
}

func (s *Shipment) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	s.customer = customer
	return nil
}

func (s *Shipment) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	s.description = description
	return nil
}

func (s *Shipment) setDeclaredValue(declaredValue kernel.Money) error {
	if err := declaredValue.Validate(); err != nil {
		return fmt.Errorf("declared value: %w", err)
	}
	s.declaredValue = declaredValue
	return nil
}

func (s *Shipment) setShippingCost(shippingCost kernel.Money) error {
	if err := shippingCost.Validate(); err != nil {
		return fmt.Errorf("shipping cost: %w", err)
	}
	s.shippingCost = shippingCost
	return nil
}

func (s *Shipment) setCODAmount(codAmount kernel.Money) error {
	if err := codAmount.Validate(); err != nil {
		return fmt.Errorf("COD amount: %w", err)
	}
	s.codAmount = codAmount
	return nil
}

func (s *Shipment) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is negative", weight))
	}
	s.weight = weight
	return nil
}
