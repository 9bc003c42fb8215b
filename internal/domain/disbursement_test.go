package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testWindow(t *testing.T) DateRange {
	t.Helper()
	window, err := NewDateRange(
		time.Date(2024, time.March, 14, 20, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 15, 20, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return window
}

func TestNewDisbursementDerivesFeeAndReference(t *testing.T) {
	disbursement, err := NewDisbursement("merchant123", decimal.NewFromInt(300), testWindow(t))
	require.NoError(t, err)

	require.NotEmpty(t, disbursement.ID)
	require.Equal(t, "merchant123", disbursement.MerchantID)
	require.Equal(t, "300", disbursement.TotalAmount.Value().String())
	require.Equal(t, "2.85", disbursement.Fee.Value().StringFixed(2))
	require.True(t, strings.HasPrefix(disbursement.Reference.Value(), "DISB-MERC-"))
}

func TestNewDisbursementValidatesInputs(t *testing.T) {
	_, err := NewDisbursement("", decimal.NewFromInt(300), testWindow(t))
	require.EqualError(t, err, "Merchant ID is required")

	_, err = NewDisbursement("merchant123", decimal.Zero, testWindow(t))
	require.EqualError(t, err, "Total amount is required")
}

func TestReconstructDisbursementValidatesStoredFee(t *testing.T) {
	now := time.Now().UTC()
	window := testWindow(t)

	disbursement, err := ReconstructDisbursement(
		"disb-1", "merchant123",
		decimal.NewFromInt(300), decimal.NewFromFloat(2.85),
		"DISB-MERC-2024-03-15",
		window.StartDate, window.EndDate, now,
	)
	require.NoError(t, err)
	require.Equal(t, "DISB-MERC-2024-03-15", disbursement.Reference.Value())

	_, err = ReconstructDisbursement(
		"disb-1", "merchant123",
		decimal.NewFromInt(300), decimal.NewFromInt(301),
		"DISB-MERC-2024-03-15",
		window.StartDate, window.EndDate, now,
	)
	require.EqualError(t, err, "Fee cannot be greater than total amount")
}

func TestNewDateRangeRejectsInvertedWindow(t *testing.T) {
	_, err := NewDateRange(
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	)
	require.EqualError(t, err, "End date must be after start date")
}
