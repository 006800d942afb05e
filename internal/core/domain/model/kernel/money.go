package kernel

import (
	"fmt"
	"math"

	"freight/internal/pkg/errs"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is an immutable value object for non-negative monetary amounts.
// It covers declared values, shipping costs, cash-on-delivery amounts, and
// ledger transaction amounts.
//
// The zero value is invalid; Money must be constructed through NewMoney,
// which rejects negative and non-finite amounts.
//
// Example:
//
//	cost, err := kernel.NewMoney(149.50)
//	if err != nil {
//	    return err
//	}
//	commission, _ := cost.MultiplyRate(0.15)
type Money struct {
	amount float64

	guard ConstructorGuard
}

// NewMoney creates a validated Money value. The amount must be finite and
// greater than or equal to zero.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is negative", amount))
	}

	return Money{
		amount: amount,
		guard:  NewConstructorGuard(),
	}, nil
}

// Amount returns the monetary amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) (Money, error) {
	if err := other.Validate(); err != nil {
		return Money{}, err
	}
	return NewMoney(m.amount + other.amount)
}

// MultiplyRate returns the amount scaled by a rate in [0, 1]. Used for
// commission calculation.
func (m Money) MultiplyRate(rate float64) (Money, error) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return Money{}, errs.NewValueIsOutOfRangeError("rate", rate, 0.0, 1.0)
	}
	return NewMoney(m.amount * rate)
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// Validate checks the value was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
