// Package ledgerrepo provides data transfer objects and mapping functions for ledger persistence.
// The ledger table is append-only; rows are never updated or deleted.
package ledgerrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// TransactionDTO represents the database structure for persisting ledger entries.
type TransactionDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
	Type        string     `gorm:"type:varchar(32);not null"`
	Amount      float64    `gorm:"not null"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null;index"`
}

// TableName specifies the database table name for ledger entries.
// Overrides GORM's default naming convention to use "transactions".
func (TransactionDTO) TableName() string {
	return "transactions"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(aggregate *ledger.Transaction) TransactionDTO {
	var shipmentID *uuid.UUID
	if id := aggregate.ShipmentID(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	return TransactionDTO{
		ID:          aggregate.ID().Bytes(),
		UserID:      aggregate.UserID().Bytes(),
		ShipmentID:  shipmentID,
		Type:        aggregate.TransactionType().String(),
		Amount:      aggregate.Amount().Amount(),
		Description: aggregate.Description(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a ledger entry.
func toDomain(dto TransactionDTO) (*ledger.Transaction, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipmentErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipmentID = &sID
	}

	ttype, err := ledger.TransactionTypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreTransaction(id, userID, shipmentID, ttype, amount, dto.Description, dto.CreatedAt)
}
