package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse aggregates.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	// The warehouse must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Update persists changes to an existing warehouse aggregate.
	Update(ctx context.Context, aggregate *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetForUpdate retrieves a warehouse aggregate by its unique identifier,
	// locking its row for the duration of the current transaction. Used by
	// workflows that adjust the current load.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	// GetAll retrieves every warehouse, active or not.
	GetAll(ctx context.Context) ([]*warehouse.Warehouse, error)

	// Delete removes a warehouse aggregate from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
