package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewAmount(t *testing.T) {
	amount, err := NewAmount(decimal.NewFromFloat(10.50))
	require.NoError(t, err)
	require.True(t, amount.Value().Equal(decimal.NewFromFloat(10.50)))
}

func TestNewAmountRejectsZero(t *testing.T) {
	_, err := NewAmount(decimal.Zero)
	require.EqualError(t, err, "Total amount is required")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestNewAmountRejectsNegative(t *testing.T) {
	_, err := NewAmount(decimal.NewFromInt(-5))
	require.EqualError(t, err, "Amount must be greater than 0")
}
