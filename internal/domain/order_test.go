package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNewOrderStartsPending(t *testing.T) {
	order, err := NewOrder("merchant-1", decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, OrderStatusPending, order.Status)
	require.Equal(t, order.CreatedAt, order.UpdatedAt)
}

func TestNewOrderValidatesInputs(t *testing.T) {
	_, err := NewOrder("", decimal.NewFromInt(100))
	require.EqualError(t, err, "Merchant ID is required")

	_, err = NewOrder("merchant-1", decimal.Zero)
	require.EqualError(t, err, "Total amount is required")

	_, err = NewOrder("merchant-1", decimal.NewFromInt(-1))
	require.EqualError(t, err, "Amount must be greater than 0")
}

func TestUpdateStatusStampsUpdatedAt(t *testing.T) {
	order, err := NewOrder("merchant-1", decimal.NewFromInt(100))
	require.NoError(t, err)

	before := order.UpdatedAt
	time.Sleep(time.Millisecond)

	require.NoError(t, order.UpdateStatus(OrderStatusProcessing))
	require.Equal(t, OrderStatusProcessing, order.Status)
	require.True(t, order.UpdatedAt.After(before))
}

func TestUpdateStatusDisbursedIsTerminal(t *testing.T) {
	order, err := NewOrder("merchant-1", decimal.NewFromInt(100))
	require.NoError(t, err)

	require.NoError(t, order.UpdateStatus(OrderStatusDisbursed))

	err = order.UpdateStatus(OrderStatusPending)
	require.EqualError(t, err, "Order is already disbursed")

	err = order.UpdateStatus(OrderStatusDisbursed)
	require.EqualError(t, err, "Order is already disbursed")
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	order, err := NewOrder("merchant-1", decimal.NewFromInt(100))
	require.NoError(t, err)

	err = order.UpdateStatus(OrderStatus("SHIPPED"))
	require.EqualError(t, err, "Invalid order status")

	var ruleErr *DomainRuleError
	require.ErrorAs(t, err, &ruleErr)
}
