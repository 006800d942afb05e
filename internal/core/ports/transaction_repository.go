package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/ledger"
)

// TransactionRepository defines the persistence contract for ledger transactions.
// The ledger is append-only.
type TransactionRepository interface {
	// Add persists a new transaction to storage.
	Add(ctx context.Context, aggregate *ledger.Transaction) error

	// GetAllForUser retrieves all transactions recorded for the given user,
	// newest first.
	GetAllForUser(ctx context.Context, userID kernel.UUID) ([]*ledger.Transaction, error)
}
