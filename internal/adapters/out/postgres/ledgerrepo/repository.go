package ledgerrepo

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormTransactionRepository implements TransactionRepository using GORM.
type GormTransactionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransactionRepository creates a new GORM ledger repository.
func NewGormTransactionRepository(db *gorm.DB, tracker aggregateTracker) *GormTransactionRepository {
	return &GormTransactionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger entry to the database.
func (r *GormTransactionRepository) Add(ctx context.Context, aggregate *ledger.Transaction) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetAllForUser retrieves all ledger entries recorded for the given user,
// newest first.
func (r *GormTransactionRepository) GetAllForUser(
	ctx context.Context, userID kernel.UUID,
) ([]*ledger.Transaction, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TransactionDTO
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]*ledger.Transaction, 0, len(dtos))
	for _, dto := range dtos {
		tx, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}
