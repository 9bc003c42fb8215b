package domain

import "github.com/shopspring/decimal"

// Amount is a validated positive monetary value.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsZero() {
		return Amount{}, NewValidationError("Total amount is required")
	}
	if value.LessThanOrEqual(decimal.Zero) {
		return Amount{}, NewValidationError("Amount must be greater than 0")
	}

	return Amount{value: value}, nil
}

func (a Amount) Value() decimal.Decimal {
	return a.value
}
