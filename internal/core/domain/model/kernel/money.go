package kernel

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency assumed when none is specified.
const DefaultCurrency = "USD"

var (
	// ErrMoneyIsNotConstructed is returned when a Money instance was not created
	// through NewMoney, NewMoneyFromFloat, or Zero.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, NewMoneyFromFloat, or Zero")

	// ErrCurrencyMismatch is returned by arithmetic and comparison operations
	// when the two operands carry different currencies.
	ErrCurrencyMismatch = errors.New("cannot operate on money values with different currencies")
)

// Money is an immutable value object representing a non-negative currency
// amount. Arithmetic never uses floating point internally; amounts are
// decimal values and the external representation is rounded half-even to
// two fractional digits.
//
// Every operation returns a new Money value; the receiver is never mutated.
// Operations across different currencies fail with ErrCurrencyMismatch.
type Money struct {
	amount   decimal.Decimal
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount and a currency code.
// The amount must not be negative and the currency must not be empty.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if currency == "" {
		return Money{}, errs.NewValueIsRequiredError("currency")
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{
		amount:   amount,
		currency: currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewMoneyFromFloat creates a Money value from a float64 amount, typically
// one decoded from an API request or a database column.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Zero returns a zero amount in the given currency. An empty currency
// falls back to DefaultCurrency.
func Zero(currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}

	m, _ := NewMoney(decimal.Zero, currency)
	return m
}

// Validate ensures the Money value was created through a constructor.
// The zero value of Money is invalid.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount rounded half-even to two fractional digits.
// This is the external representation; internal arithmetic keeps full
// precision.
func (m Money) Amount() decimal.Decimal {
	return m.amount.RoundBank(2)
}

// Float64 returns the rounded amount as a float64 for serialization.
func (m Money) Float64() float64 {
	return m.Amount().InexactFloat64()
}

// Currency returns the currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of the receiver and other.
// Fails with ErrCurrencyMismatch when currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference between the receiver and other.
// Fails with ErrCurrencyMismatch when currencies differ, and with an
// invalid-amount error when the result would be negative: a negative
// money amount is never representable.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply returns the amount multiplied by a non-negative integer factor.
func (m Money) Multiply(factor int) (Money, error) {
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("factor",
			fmt.Errorf("%d is negative", factor))
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))), m.currency)
}

// Equals reports whether two Money values represent the same rounded
// amount in the same currency.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.Amount().Equal(other.Amount())
}

// IsGreaterThan reports whether the receiver is strictly greater than other.
// Fails with ErrCurrencyMismatch when currencies differ.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}

	return m.amount.GreaterThan(other.amount), nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the display form, e.g. "80.00 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount().StringFixed(2), m.currency)
}

func (m Money) ensureSameCurrency(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
