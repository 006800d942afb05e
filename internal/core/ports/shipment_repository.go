// Package ports defines repository interfaces for the freight domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and querying shipment entities
// with their complete state including the status history.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// History entries are appended, never rewritten.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its full status history.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment aggregate by its unique identifier,
	// locking its row for the duration of the current transaction. Used by
	// status transition workflows to serialize concurrent updates.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrackingNumber retrieves a shipment aggregate by its public
	// tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*shipment.Shipment, error)

	// GetFirstAwaitingDriver retrieves the first shipment that sits in a
	// warehouse with no driver assigned. Used by the driver assignment
	// workflow to find pending shipments.
	GetFirstAwaitingDriver(ctx context.Context) (*shipment.Shipment, error)

	// CountInWarehouse returns the number of shipments currently stored in
	// the given warehouse. Used by the load reconciliation workflow.
	CountInWarehouse(ctx context.Context, warehouseID kernel.UUID) (int, error)

	// CountActiveForDriver returns the number of the driver's shipments
	// that have not reached a terminal status. Used to decide whether the
	// driver can be removed.
	CountActiveForDriver(ctx context.Context, driverID kernel.UUID) (int, error)

	// CountUndeliveredInWarehouse returns the number of shipments bound to
	// the given warehouse in any status other than delivered. Used to
	// decide whether the warehouse can be removed.
	CountUndeliveredInWarehouse(ctx context.Context, warehouseID kernel.UUID) (int, error)

	// ExistsTrackingNumberOrBarcode reports whether any shipment already
	// carries the given tracking number or barcode.
	ExistsTrackingNumberOrBarcode(ctx context.Context, trackingNumber, barcode string) (bool, error)

	// Delete removes a shipment aggregate and its history from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
