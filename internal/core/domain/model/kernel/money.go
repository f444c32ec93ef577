package kernel

import (
	"fmt"

	"orderflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of minor-unit digits kept on every amount.
const MoneyScale = 2

// Money is a non-negative currency amount rounded to two decimal places.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rejects negative amounts and rounds half away from zero to MoneyScale.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("money", amount.String(), "0", "+inf")
	}
	return Money{amount: amount.Round(MoneyScale)}, nil
}

// MoneyFromString parses a decimal string such as "120.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(d)
}

// MustMoney builds Money from an integer number of major units. It panics on negative input
// and is meant for constants and tests.
func MustMoney(major int64) Money {
	m, err := NewMoney(decimal.NewFromInt(major))
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul multiplies by an integer quantity.
func (m Money) Mul(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// MulRate multiplies by a rate and rounds the result to MoneyScale.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(MoneyScale)}
}

// MinorUnits returns the amount in cents (paise).
func (m Money) MinorUnits() int64 {
	return m.amount.Shift(MoneyScale).IntPart()
}

// MoneyFromMinorUnits is the inverse of MinorUnits.
func MoneyFromMinorUnits(units int64) Money {
	return Money{amount: decimal.New(units, -MoneyScale)}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two decimals, e.g. "240.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(data []byte) error {
	parsed, err := MoneyFromString(string(data))
	if err != nil {
		return fmt.Errorf("unmarshal money: %w", err)
	}
	*m = parsed
	return nil
}
