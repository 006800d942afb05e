package warehouse

import (
	"errors"
	"fmt"
	"math"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrWarehouseIsNotConstructed indicates that a Warehouse was not created
	// through NewWarehouse or RestoreWarehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse or RestoreWarehouse")

	// ErrCapacityExceeded indicates a load adjustment that would push the
	// current load above the warehouse capacity.
	ErrCapacityExceeded = errors.New("warehouse capacity exceeded")

	// ErrLoadBelowZero indicates a load adjustment that would make the
	// current load negative.
	ErrLoadBelowZero = errors.New("warehouse load cannot be negative")
)

// LoadBand classifies warehouse utilization for operations dashboards.
type LoadBand string

const (
	// LoadBandGood covers utilization below 75%.
	LoadBandGood LoadBand = "good"

	// LoadBandWarning covers utilization of 75% and above.
	LoadBandWarning LoadBand = "warning"

	// LoadBandCritical covers utilization of 90% and above.
	LoadBandCritical LoadBand = "critical"
)

// Warehouse is a capacity-bounded holding location for shipments. Its
// current load is derived from the shipments occupying it and adjusted by
// the lifecycle engine whenever a shipment enters or leaves the InWarehouse
// status.
//
// Invariant: 0 <= currentLoad <= capacity at all times. AdjustLoad is the
// only mutator of the load and enforces both bounds.
type Warehouse struct {
	id          kernel.UUID
	code        string
	name        string
	capacity    int
	currentLoad int
	active      bool
	location    kernel.GeoPoint

	guard kernel.ConstructorGuard
}

// NewWarehouse creates an active, empty Warehouse. Capacity must be
// positive and the code and name non-empty.
func NewWarehouse(id kernel.UUID, code, name string, capacity int, location kernel.GeoPoint) (*Warehouse, error) {
	w := &Warehouse{
		active: true,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setCode(code),
		w.setName(name),
		w.setCapacity(capacity),
		w.setLocation(location),
	); err != nil {
		return nil, err
	}

	return w, nil
}

// RestoreWarehouse reconstructs a Warehouse from persistence, including its
// current load and active flag.
func RestoreWarehouse(
	id kernel.UUID,
	code, name string,
	capacity, currentLoad int,
	active bool,
	location kernel.GeoPoint,
) (*Warehouse, error) {
	w := &Warehouse{
		active: active,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		w.setID(id),
		w.setCode(code),
		w.setName(name),
		w.setCapacity(capacity),
		w.setLocation(location),
	); err != nil {
		return nil, err
	}

	if currentLoad < 0 || currentLoad > w.capacity {
		return nil, errs.NewValueIsOutOfRangeError("currentLoad", currentLoad, 0, w.capacity)
	}
	w.currentLoad = currentLoad

	return w, nil
}

// Validate ensures the Warehouse instance was properly constructed.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by their unique identifiers.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

// Code returns the unique warehouse code.
func (w *Warehouse) Code() string {
	return w.code
}

// Name returns the human-readable warehouse name.
func (w *Warehouse) Name() string {
	return w.name
}

// Capacity returns the maximum number of shipments the warehouse holds.
func (w *Warehouse) Capacity() int {
	return w.capacity
}

// CurrentLoad returns the number of shipments currently occupying the
// warehouse.
func (w *Warehouse) CurrentLoad() int {
	return w.currentLoad
}

// IsActive reports whether the warehouse accepts shipments.
func (w *Warehouse) IsActive() bool {
	return w.active
}

// Location returns the warehouse's geographic position.
func (w *Warehouse) Location() kernel.GeoPoint {
	return w.location
}

// AdjustLoad applies a load delta, enforcing 0 <= load <= capacity.
// Returns ErrCapacityExceeded or ErrLoadBelowZero without mutating the
// warehouse when the bound would be violated. This is the only load mutator;
// it is invoked from shipment lifecycle side effects and the reconciliation
// command.
func (w *Warehouse) AdjustLoad(delta int) error {
	next := w.currentLoad + delta
	if next < 0 {
		return fmt.Errorf("%w: load %d, delta %d", ErrLoadBelowZero, w.currentLoad, delta)
	}
	if next > w.capacity {
		return fmt.Errorf("%w: load %d, delta %d, capacity %d", ErrCapacityExceeded, w.currentLoad, delta, w.capacity)
	}

	w.currentLoad = next
	return nil
}

// SetLoad overwrites the current load from a recomputed shipment count.
// Used only by warehouse load reconciliation; rejects out-of-bound values.
func (w *Warehouse) SetLoad(load int) error {
	if load < 0 || load > w.capacity {
		return errs.NewValueIsOutOfRangeError("load", load, 0, w.capacity)
	}
	w.currentLoad = load
	return nil
}

// Utilization returns the load as a rounded percentage of capacity, 0 when
// capacity is 0.
func (w *Warehouse) Utilization() int {
	if w.capacity == 0 {
		return 0
	}
	return int(math.Round(float64(w.currentLoad) / float64(w.capacity) * 100))
}

// Band classifies the current utilization: critical at 90% and above,
// warning at 75% and above, good otherwise.
func (w *Warehouse) Band() LoadBand {
	utilization := w.Utilization()
	switch {
	case utilization >= 90:
		return LoadBandCritical
	case utilization >= 75:
		return LoadBandWarning
	default:
		return LoadBandGood
	}
}

// AvailableSpace returns the remaining capacity.
func (w *Warehouse) AvailableSpace() int {
	return w.capacity - w.currentLoad
}

// Deactivate stops the warehouse from accepting new shipments.
func (w *Warehouse) Deactivate() {
	w.active = false
}

// Activate re-enables the warehouse.
func (w *Warehouse) Activate() {
	w.active = true
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("warehouse code")
	}
	w.code = code
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("warehouse name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("capacity", fmt.Errorf("%d is not greater than 0", capacity))
	}
	w.capacity = capacity
	return nil
}

func (w *Warehouse) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	w.location = location
	return nil
}
