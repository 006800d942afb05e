package queries

import (
	"context"
	"math"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWarehouseUtilizationQueryHandler builds the warehouse load report from
// the stored capacity and load columns. Classification thresholds match the
// warehouse aggregate.
type GetWarehouseUtilizationQueryHandler struct {
	db *gorm.DB
}

// NewGetWarehouseUtilizationQueryHandler creates a handler for utilization reports.
// Requires a GORM database connection for query execution.
func NewGetWarehouseUtilizationQueryHandler(db *gorm.DB) GetWarehouseUtilizationQueryHandler {
	return GetWarehouseUtilizationQueryHandler{db: db}
}

// Handle executes the utilization report over every warehouse, ordered by code.
func (h GetWarehouseUtilizationQueryHandler) Handle(
	ctx context.Context,
	query GetWarehouseUtilizationQuery,
) ([]GetWarehouseUtilizationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	warehouses := make([]GetWarehouseUtilizationQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			name,
			capacity,
			current_load,
			active
		FROM warehouses
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetWarehouseUtilizationQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Code,
			&resp.Name,
			&resp.Capacity,
			&resp.CurrentLoad,
			&resp.Active,
		)
		if err != nil {
			return nil, err
		}

		warehouseID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = warehouseID

		resp.AvailableSpace = resp.Capacity - resp.CurrentLoad
		resp.Utilization = utilizationPercent(resp.CurrentLoad, resp.Capacity)
		resp.Band = string(loadBand(resp.Utilization))

		warehouses = append(warehouses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return warehouses, nil
}

func utilizationPercent(currentLoad, capacity int) int {
	if capacity == 0 {
		return 0
	}
	return int(math.Round(float64(currentLoad) / float64(capacity) * 100))
}

func loadBand(utilization int) warehouse.LoadBand {
	switch {
	case utilization >= 90:
		return warehouse.LoadBandCritical
	case utilization >= 75:
		return warehouse.LoadBandWarning
	default:
		return warehouse.LoadBandGood
	}
}
