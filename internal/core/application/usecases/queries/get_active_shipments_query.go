package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetActiveShipmentsQueryIsNotConstructed = errors.New(
	"GetActiveShipmentsQuery must be created via NewGetActiveShipmentsQuery constructor",
)

// GetActiveShipmentsQuery retrieves all shipments that have not reached a
// terminal status. Used for operational dashboards and dispatch monitoring.
//
// Example:
//
//	query := NewGetActiveShipmentsQuery()
//	handler := NewGetActiveShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active shipments: %w", err)
//	}
//
//	fmt.Printf("%d shipments in flight\n", len(shipments))
type GetActiveShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveShipmentsQuery creates a query to retrieve in-flight shipments.
// This is a parameterless query that fetches all non-terminal shipments.
func NewGetActiveShipmentsQuery() GetActiveShipmentsQuery {
	return GetActiveShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActiveShipmentsQueryIsNotConstructed if validation fails.
func (q GetActiveShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShipmentsQueryIsNotConstructed)
}

// GetActiveShipmentsQueryResponse represents one in-flight shipment.
type GetActiveShipmentsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string
	CustomerCity   string
	DriverID       *kernel.UUID
	WarehouseID    *kernel.UUID
	CreatedAt      time.Time
}
