// Package ledger provides the append-only Transaction record. Commission
// entries are created by the shipment lifecycle engine on delivery;
// payments and withdrawals come from the billing surface. Entries are never
// mutated once written.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrTransactionIsNotConstructed indicates that a Transaction was not
// created through NewTransaction or RestoreTransaction.
var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction or RestoreTransaction")

// TransactionType classifies a ledger entry.
type TransactionType int

const (
	// TransactionUnknown represents an invalid or undefined type.
	TransactionUnknown TransactionType = iota

	// TransactionCommission is a driver commission accrued on delivery.
	TransactionCommission

	// TransactionPayment is a payment received.
	TransactionPayment

	// TransactionWithdrawal is a payout to a user.
	TransactionWithdrawal
)

// String returns the wire representation of the type.
func (t TransactionType) String() string {
	switch t {
	case TransactionCommission:
		return "COMMISSION"
	case TransactionPayment:
		return "PAYMENT"
	case TransactionWithdrawal:
		return "WITHDRAWAL"
	default:
		return "UNKNOWN"
	}
}

// TransactionTypeFromString parses the wire representation (e.g. "COMMISSION")
// into a TransactionType. Returns an error for unrecognized values.
func TransactionTypeFromString(s string) (TransactionType, error) {
	switch s {
	case "COMMISSION":
		return TransactionCommission, nil
	case "PAYMENT":
		return TransactionPayment, nil
	case "WITHDRAWAL":
		return TransactionWithdrawal, nil
	default:
		return TransactionUnknown, errs.NewValueIsInvalidErrorWithCause("transaction type", fmt.Errorf("%q is not a valid type", s))
	}
}

// Validate checks the type is a member of the enum.
func (t TransactionType) Validate() error {
	switch t {
	case TransactionCommission, TransactionPayment, TransactionWithdrawal:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transaction type", fmt.Errorf("%d is not a valid type", t))
	}
}

// Transaction is an append-only ledger entry tied to a user and optionally
// to a shipment.
type Transaction struct {
	id          kernel.UUID
	userID      kernel.UUID
	shipmentID  *kernel.UUID
	ttype       TransactionType
	amount      kernel.Money
	description string
	createdAt   time.Time

	guard kernel.ConstructorGuard
}

// NewTransaction creates a ledger entry. The shipment reference is optional
// and only set for shipment-derived entries such as commissions.
func NewTransaction(
	id kernel.UUID,
	userID kernel.UUID,
	shipmentID *kernel.UUID,
	ttype TransactionType,
	amount kernel.Money,
	description string,
	createdAt time.Time,
) (*Transaction, error) {
	if err := errors.Join(id.Validate(), userID.Validate(), ttype.Validate(), amount.Validate()); err != nil {
		return nil, err
	}
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Transaction{
		id:          id,
		userID:      userID,
		shipmentID:  shipmentID,
		ttype:       ttype,
		amount:      amount,
		description: description,
		createdAt:   createdAt,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// RestoreTransaction reconstructs a ledger entry from persistence.
func RestoreTransaction(
	id kernel.UUID,
	userID kernel.UUID,
	shipmentID *kernel.UUID,
	ttype TransactionType,
	amount kernel.Money,
	description string,
	createdAt time.Time,
) (*Transaction, error) {
	return NewTransaction(id, userID, shipmentID, ttype, amount, description, createdAt)
}

// Validate ensures the Transaction instance was properly constructed.
func (t *Transaction) Validate() error {
	if t == nil {
		return ErrTransactionIsNotConstructed
	}
	return t.guard.Validate(ErrTransactionIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (t *Transaction) ID() kernel.UUID {
	return t.id
}

// UserID returns the user the entry belongs to.
func (t *Transaction) UserID() kernel.UUID {
	return t.userID
}

// ShipmentID returns the shipment this entry derives from, or nil.
func (t *Transaction) ShipmentID() *kernel.UUID {
	return t.shipmentID
}

// TransactionType returns the entry's classification.
func (t *Transaction) TransactionType() TransactionType {
	return t.ttype
}

// Amount returns the monetary amount.
func (t *Transaction) Amount() kernel.Money {
	return t.amount
}

// Description returns the free-text description.
func (t *Transaction) Description() string {
	return t.description
}

// CreatedAt returns the creation time.
func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}
