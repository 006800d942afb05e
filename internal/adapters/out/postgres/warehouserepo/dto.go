// Package warehouserepo provides data transfer objects and mapping functions for warehouse persistence.
// This package implements the repository pattern for the warehouse domain aggregate, handling
// the conversion between domain entities and database representations.
package warehouserepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// WarehouseDTO represents the database structure for persisting warehouse aggregates.
type WarehouseDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Capacity    int       `gorm:"not null"`
	CurrentLoad int       `gorm:"not null"`
	Latitude    float64   `gorm:"not null"`
	Longitude   float64   `gorm:"not null"`
	Active      bool      `gorm:"not null"`
}

// TableName specifies the database table name for warehouse entities.
// Overrides GORM's default naming convention to use "warehouses".
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code(),
		Name:        aggregate.Name(),
		Capacity:    aggregate.Capacity(),
		CurrentLoad: aggregate.CurrentLoad(),
		Latitude:    aggregate.Location().Latitude(),
		Longitude:   aggregate.Location().Longitude(),
		Active:      aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Code, dto.Name, dto.Capacity, dto.CurrentLoad, dto.Active, location)
}
