package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewReference(t *testing.T) {
	date := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

	reference, err := NewReference("merchant123", date)
	require.NoError(t, err)
	require.Equal(t, "DISB-MERC-2024-01-15", reference.Value())
}

func TestNewReferenceShortMerchantID(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	reference, err := NewReference("abc", date)
	require.NoError(t, err)
	require.Equal(t, "DISB-ABC-2024-01-15", reference.Value())
}

func TestNewReferenceIsDeterministic(t *testing.T) {
	date := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	first, err := NewReference("merchant123", date)
	require.NoError(t, err)
	second, err := NewReference("merchant123", date)
	require.NoError(t, err)

	require.Equal(t, first.Value(), second.Value())
}

func TestNewReferenceValidatesInputs(t *testing.T) {
	_, err := NewReference("", time.Now())
	require.EqualError(t, err, "Merchant ID is required")

	_, err = NewReference("merchant123", time.Time{})
	require.EqualError(t, err, "Date is required")
}
