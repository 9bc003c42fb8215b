package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewFeeTierRates(t *testing.T) {
	cases := []struct {
		total string
		fee   string
	}{
		{total: "40", fee: "0.40"},
		{total: "50", fee: "0.50"},
		{total: "200", fee: "1.90"},
		{total: "300", fee: "2.85"},
		{total: "1000", fee: "8.50"},
	}

	for _, tc := range cases {
		total := decimal.RequireFromString(tc.total)

		amount, err := NewAmount(total)
		require.NoError(t, err)

		fee := NewFee(amount)
		require.Equal(t, tc.fee, fee.Value().StringFixed(2), "total %s", tc.total)
	}
}

func TestNewFeeFromTotalRejectsZeroAndNegative(t *testing.T) {
	_, err := NewFeeFromTotal(decimal.Zero)
	require.EqualError(t, err, "Total amount is required")

	_, err = NewFeeFromTotal(decimal.NewFromInt(-10))
	require.EqualError(t, err, "Fee cannot be negative")
}

func TestNewFeeFromValueBounds(t *testing.T) {
	total, err := NewAmount(decimal.NewFromInt(100))
	require.NoError(t, err)

	fee, err := NewFeeFromValue(decimal.NewFromFloat(0.95), total)
	require.NoError(t, err)
	require.Equal(t, "0.95", fee.Value().StringFixed(2))

	_, err = NewFeeFromValue(decimal.NewFromInt(-1), total)
	require.EqualError(t, err, "Fee cannot be negative")

	_, err = NewFeeFromValue(decimal.NewFromInt(101), total)
	require.EqualError(t, err, "Fee cannot be greater than total amount")
}
