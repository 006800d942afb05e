package services

import (
	"errors"
	"math"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ErrDriverNotFound is returned when no suitable driver is available for shipment dispatch.
// This occurs when either no drivers are provided or none of the provided drivers
// is active, available and has a known location.
var ErrDriverNotFound = errors.New("driver not found")

// DriverDispatcher is a domain service responsible for finding and assigning the optimal driver
// for a shipment based on shortest distance to the pickup point.
//
// Key responsibilities:
//   - Validating shipments before dispatch
//   - Selecting optimal drivers using distance-based optimization
//   - Ensuring atomic shipment assignment workflow
//
// Business rules:
//   - Shipments must be valid before dispatch
//   - Drivers must be active, available and report a location
//   - Selection prioritizes minimum distance to the pickup point
//   - Shipment assignment is atomic
//
// Example usage:
//
//	dispatcher := NewDriverDispatcher()
//	drivers := []*driver.Driver{driver1, driver2, driver3}
//
//	assignedDriver, err := dispatcher.Dispatch(shp, pickup, drivers)
//	if errors.Is(err, ErrDriverNotFound) {
//	    // No available drivers for this shipment
//	    return
//	}
//	if err != nil {
//	    // Handle dispatch failure
//	    return
//	}
//	// Shipment successfully assigned to assignedDriver
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch finds the optimal driver for a given shipment and executes the assignment workflow.
//
// Parameters:
//   - shp: The shipment to be dispatched (must be valid)
//   - pickup: The pickup point, normally the assigned warehouse's location
//   - drivers: Slice of candidate drivers to consider
//
// Returns:
//   - *driver.Driver: The driver assigned to the shipment, marked busy
//   - error: ErrDriverNotFound if no suitable driver exists, or other validation/assignment errors
func (d DriverDispatcher) Dispatch(
	shp *shipment.Shipment, pickup kernel.GeoPoint, drivers []*driver.Driver,
) (*driver.Driver, error) {
	if err := shp.Validate(); err != nil {
		return nil, err
	}

	if err := pickup.Validate(); err != nil {
		return nil, err
	}

	bestDriver, err := d.findNearestDriver(pickup, drivers)
	if err != nil {
		return nil, err
	}

	if err = shp.AssignDriver(bestDriver.ID()); err != nil {
		return nil, err
	}

	bestDriver.MarkBusy()

	return bestDriver, nil
}

// findNearestDriver searches through the provided drivers to find the one closest to the pickup point.
//
// Selection criteria:
//   - Validates driver construction
//   - Skips inactive, busy and location-less drivers
//   - Optimizes for minimum distance to the pickup point
//   - Returns first driver in case of ties
func (d DriverDispatcher) findNearestDriver(
	pickup kernel.GeoPoint, drivers []*driver.Driver,
) (*driver.Driver, error) {
	var (
		bestDriver   *driver.Driver
		bestDistance = math.MaxFloat64
	)

	for _, candidate := range drivers {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsActive() || !candidate.IsAvailable() || candidate.Location() == nil {
			continue
		}

		distance := candidate.Location().DistanceTo(pickup)
		if distance < bestDistance {
			bestDistance = distance
			bestDriver = candidate
		}
	}

	if bestDriver == nil {
		return nil, ErrDriverNotFound
	}

	return bestDriver, nil
}
