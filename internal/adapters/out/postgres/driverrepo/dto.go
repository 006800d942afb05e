// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone          string    `gorm:"type:varchar(32)"`
	VehicleNumber  string    `gorm:"type:varchar(32);not null"`
	LicenseNumber  string    `gorm:"type:varchar(64);not null"`
	Active         bool      `gorm:"not null"`
	Available      bool      `gorm:"not null"`
	Latitude       *float64
	Longitude      *float64
	CommissionRate float64 `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var latitude, longitude *float64
	if loc := aggregate.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lng
	}

	return DriverDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Email:          aggregate.Email(),
		Phone:          aggregate.Phone(),
		VehicleNumber:  aggregate.VehicleNumber(),
		LicenseNumber:  aggregate.LicenseNumber(),
		Active:         aggregate.IsActive(),
		Available:      aggregate.IsAvailable(),
		Latitude:       latitude,
		Longitude:      longitude,
		CommissionRate: aggregate.CommissionRate(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		dto.VehicleNumber,
		dto.LicenseNumber,
		dto.Active,
		dto.Available,
		location,
		dto.CommissionRate,
	)
}
