package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetDriverPerformanceQueryHandler aggregates a driver's delivery outcomes
// and the shipping cost of everything they delivered straight from the
// tables. The rating logic lives in the domain; the handler only gathers
// the raw counts.
type GetDriverPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverPerformanceQueryHandler creates a handler for performance reports.
// Requires a GORM database connection for query execution.
func NewGetDriverPerformanceQueryHandler(db *gorm.DB) GetDriverPerformanceQueryHandler {
	return GetDriverPerformanceQueryHandler{db: db}
}

// Handle executes the performance aggregation.
// Returns errs.ErrObjectNotFound when the driver does not exist.
func (h GetDriverPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetDriverPerformanceQuery,
) (GetDriverPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverPerformanceQueryResponse{}, err
	}

	driverID := query.DriverID()

	var name string

	row := h.db.WithContext(ctx).Raw(`
		SELECT name
		FROM drivers
		WHERE id = ?
	`, driverID.Bytes()).Row()

	err := row.Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDriverPerformanceQueryResponse{}, errs.NewObjectNotFoundError("driverID", driverID.String())
	}
	if err != nil {
		return GetDriverPerformanceQueryResponse{}, err
	}

	var delivered, failed int

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status IN (?, ?, ?))
		FROM shipments
		WHERE driver_id = ?
	`,
		shipment.Delivered.String(),
		shipment.DeliveryFailed.String(),
		shipment.Returned.String(),
		shipment.PartialReturned.String(),
		driverID.Bytes(),
	).Row()

	if err = row.Scan(&delivered, &failed); err != nil {
		return GetDriverPerformanceQueryResponse{}, err
	}

	var earnings float64

	row = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(shipping_cost), 0)
		FROM shipments
		WHERE driver_id = ? AND status = ?
	`, driverID.Bytes(), shipment.Delivered.String()).Row()

	if err = row.Scan(&earnings); err != nil {
		return GetDriverPerformanceQueryResponse{}, err
	}

	performance := driver.ComputePerformance(delivered, failed, earnings)

	return GetDriverPerformanceQueryResponse{
		DriverID:       driverID,
		Name:           name,
		TotalDelivered: performance.TotalDeliveries,
		TotalFailed:    performance.FailedDeliveries,
		TotalEarnings:  performance.TotalEarnings,
		SuccessRate:    performance.SuccessRate,
		Rating:         performance.Rating,
	}, nil
}
