package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler retrieves in-flight shipments from the database.
// Filters out terminal statuses to provide active workload visibility.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment queries.
// Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active shipments.
// Returns shipments whose status is not DELIVERED, RETURNED or
// PARTIAL_RETURNED, oldest first.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]GetActiveShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetActiveShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			customer_city,
			driver_id,
			warehouse_id,
			created_at
		FROM shipments
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at, id
	`, shipment.Delivered.String(), shipment.Returned.String(), shipment.PartialReturned.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveShipmentsQueryResponse
		var id uuid.UUID
		var driverID, warehouseID *uuid.UUID

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&resp.Status,
			&resp.CustomerCity,
			&driverID,
			&warehouseID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = shipmentID

		if resp.DriverID, err = optionalUUID(driverID); err != nil {
			return nil, err
		}
		if resp.WarehouseID, err = optionalUUID(warehouseID); err != nil {
			return nil, err
		}

		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	return &converted, nil
}
