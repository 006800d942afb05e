package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetWarehouseUtilizationQueryIsNotConstructed = errors.New(
	"GetWarehouseUtilizationQuery must be created via NewGetWarehouseUtilizationQuery constructor",
)

// GetWarehouseUtilizationQuery retrieves the load picture of every warehouse:
// capacity, current load, utilization percentage and its classification band.
//
// Example:
//
//	query := NewGetWarehouseUtilizationQuery()
//	handler := NewGetWarehouseUtilizationQueryHandler(db)
//
//	warehouses, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get warehouse utilization: %w", err)
//	}
//
//	for _, w := range warehouses {
//	    fmt.Printf("%s: %d%% (%s)\n", w.Code, w.Utilization, w.Band)
//	}
type GetWarehouseUtilizationQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWarehouseUtilizationQuery creates a query covering all warehouses.
// This is a parameterless query; inactive warehouses are included.
func NewGetWarehouseUtilizationQuery() GetWarehouseUtilizationQuery {
	return GetWarehouseUtilizationQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWarehouseUtilizationQueryIsNotConstructed if validation fails.
func (q GetWarehouseUtilizationQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseUtilizationQueryIsNotConstructed)
}

// GetWarehouseUtilizationQueryResponse represents the load of one warehouse.
type GetWarehouseUtilizationQueryResponse struct {
	ID          kernel.UUID
	Code        string
	Name        string
	Capacity    int
	CurrentLoad int
	// AvailableSpace is capacity minus current load.
	AvailableSpace int
	Utilization    int
	Band           string
	Active         bool
}
