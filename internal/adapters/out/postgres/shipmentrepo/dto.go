// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Maps shipment domain entities to relational database tables with proper indexing
// for efficient querying by status, tracking number, and assignments.
type ShipmentDTO struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey"`
	TrackingNumber string            `gorm:"type:varchar(64);not null;uniqueIndex"`
	Barcode        string            `gorm:"type:varchar(64);not null;uniqueIndex"`
	MerchantID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	DriverID       *uuid.UUID        `gorm:"type:uuid;index"`
	WarehouseID    *uuid.UUID        `gorm:"type:uuid;index"`
	Customer       CustomerDTO       `gorm:"embedded;embeddedPrefix:customer_"`
	Description    string            `gorm:"type:text"`
	DeclaredValue  float64           `gorm:"not null"`
	ShippingCost   float64           `gorm:"not null"`
	CODAmount      float64           `gorm:"column:cod_amount;not null"`
	Weight         float64           `gorm:"not null"`
	Dimensions     string            `gorm:"type:varchar(64)"`
	Status         string            `gorm:"type:varchar(32);not null;index"`
	CreatedAt      time.Time         `gorm:"not null"`
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
	History        []HistoryEntryDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// CustomerDTO represents the embedded recipient details within the shipment table.
type CustomerDTO struct {
	Name    string `gorm:"type:varchar(255);not null"`
	Phone   string `gorm:"type:varchar(32);not null"`
	Address string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(128);not null"`
}

// HistoryEntryDTO represents the database structure for persisting status history entries.
// Links to shipments via foreign key; rows are append-only.
type HistoryEntryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status     string     `gorm:"type:varchar(32);not null"`
	Notes      string     `gorm:"type:text"`
	Latitude   *float64
	Longitude  *float64
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	RecordedAt time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for history entries.
// Overrides GORM's default naming convention to use "shipment_history".
func (HistoryEntryDTO) TableName() string {
	return "shipment_history"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Maps all shipment attributes including the full status history.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	shipmentID := aggregate.ID().Bytes()

	history := make([]HistoryEntryDTO, 0, len(aggregate.History()))
	for _, entry := range aggregate.History() {
		history = append(history, historyFromDomain(shipmentID, entry))
	}

	return ShipmentDTO{
		ID:             shipmentID,
		TrackingNumber: aggregate.TrackingNumber(),
		Barcode:        aggregate.Barcode(),
		MerchantID:     aggregate.MerchantID().Bytes(),
		DriverID:       optionalBytes(aggregate.DriverID()),
		WarehouseID:    optionalBytes(aggregate.WarehouseID()),
		Customer: CustomerDTO{
			Name:    aggregate.Customer().Name(),
			Phone:   aggregate.Customer().Phone(),
			Address: aggregate.Customer().Address(),
			City:    aggregate.Customer().City(),
		},
		Description:   aggregate.Description(),
		DeclaredValue: aggregate.DeclaredValue().Amount(),
		ShippingCost:  aggregate.ShippingCost().Amount(),
		CODAmount:     aggregate.CODAmount().Amount(),
		Weight:        aggregate.Weight(),
		Dimensions:    aggregate.Dimensions(),
		Status:        aggregate.Status().String(),
		CreatedAt:     aggregate.CreatedAt(),
		PickedUpAt:    aggregate.PickedUpAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		History:       history,
	}
}

// historyFromDomain converts one status history entry to its database representation.
func historyFromDomain(shipmentID uuid.UUID, entry shipment.HistoryEntry) HistoryEntryDTO {
	var latitude, longitude *float64
	if loc := entry.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		latitude, longitude = &lat, &lng
	}

	return HistoryEntryDTO{
		ID:         entry.ID().Bytes(),
		ShipmentID: shipmentID,
		Status:     entry.Status().String(),
		Notes:      entry.Notes(),
		Latitude:   latitude,
		Longitude:  longitude,
		ActorID:    optionalBytes(entry.ActorID()),
		RecordedAt: entry.RecordedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including history using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := optionalUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}

	warehouseID, err := optionalUUID(dto.WarehouseID)
	if err != nil {
		return nil, err
	}

	customer, err := shipment.NewCustomer(
		dto.Customer.Name,
		dto.Customer.Phone,
		dto.Customer.Address,
		dto.Customer.City,
	)
	if err != nil {
		return nil, err
	}

	declaredValue, err := kernel.NewMoney(dto.DeclaredValue)
	if err != nil {
		return nil, err
	}
	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}
	codAmount, err := kernel.NewMoney(dto.CODAmount)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]shipment.HistoryEntry, 0, len(dto.History))
	for _, entryDto := range dto.History {
		entry, entryErr := historyToDomain(entryDto)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return shipment.RestoreShipment(
		id,
		dto.TrackingNumber,
		dto.Barcode,
		merchantID,
		driverID,
		warehouseID,
		customer,
		dto.Description,
		declaredValue,
		shippingCost,
		codAmount,
		dto.Weight,
		dto.Dimensions,
		status,
		dto.CreatedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		history,
	)
}

// historyToDomain converts a history entry DTO to its domain representation.
func historyToDomain(dto HistoryEntryDTO) (shipment.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shipment.HistoryEntry{}, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return shipment.HistoryEntry{}, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return shipment.HistoryEntry{}, pointErr
		}
		location = &point
	}

	actorID, err := optionalUUID(dto.ActorID)
	if err != nil {
		return shipment.HistoryEntry{}, err
	}

	return shipment.NewHistoryEntry(id, status, dto.Notes, location, actorID, dto.RecordedAt)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}

	return &converted, nil
}
