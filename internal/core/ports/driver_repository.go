package ports

import (
	"context"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	// The driver must be valid and carry an email no other driver uses.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves all active drivers that are currently free
	// to take a shipment. Used by the driver assignment workflow.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)

	// ExistsEmail reports whether any driver already uses the given email.
	ExistsEmail(ctx context.Context, email string) (bool, error)

	// Delete removes a driver aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
