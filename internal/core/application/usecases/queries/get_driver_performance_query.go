package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetDriverPerformanceQueryIsNotConstructed = errors.New(
	"GetDriverPerformanceQuery must be created via NewGetDriverPerformanceQuery constructor",
)

// GetDriverPerformanceQuery retrieves the delivery statistics of one driver:
// delivered and failed counts, delivered shipping-cost earnings, success rate and
// the derived rating.
//
// Example:
//
//	query, _ := NewGetDriverPerformanceQuery(driverID)
//	handler := NewGetDriverPerformanceQueryHandler(db)
//
//	performance, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get driver performance: %w", err)
//	}
//	fmt.Printf("Rating %.1f at %d%% success\n", performance.Rating, performance.SuccessRate)
type GetDriverPerformanceQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDriverPerformanceQuery creates a query for the given driver.
func NewGetDriverPerformanceQuery(driverID kernel.UUID) (GetDriverPerformanceQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverPerformanceQuery{}, err
	}

	return GetDriverPerformanceQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverPerformanceQueryIsNotConstructed)
}

// DriverID returns the driver to report on.
func (q GetDriverPerformanceQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetDriverPerformanceQueryResponse is the aggregated performance view of one driver.
type GetDriverPerformanceQueryResponse struct {
	DriverID       kernel.UUID
	Name           string
	TotalDelivered int
	TotalFailed    int
	TotalEarnings  float64
	SuccessRate    int
	Rating         float64
}
