package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusDisbursed  OrderStatus = "DISBURSED"
)

type Order struct {
	ID         string
	MerchantID string
	Amount     Amount
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func NewOrder(merchantID string, amount decimal.Decimal) (Order, error) {
	if strings.TrimSpace(merchantID) == "" {
		return Order{}, NewValidationError("Merchant ID is required")
	}

	validAmount, err := NewAmount(amount)
	if err != nil {
		return Order{}, err
	}

	now := time.Now().UTC()
	return Order{
		ID:         uuid.NewString(),
		MerchantID: merchantID,
		Amount:     validAmount,
		Status:     OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ReconstructOrder rebuilds a persisted order without regenerating its id
// or timestamps.
func ReconstructOrder(
	id string,
	merchantID string,
	amount decimal.Decimal,
	status OrderStatus,
	createdAt time.Time,
	updatedAt time.Time,
) (Order, error) {
	if strings.TrimSpace(id) == "" {
		return Order{}, NewValidationError("Order ID is required")
	}
	if strings.TrimSpace(merchantID) == "" {
		return Order{}, NewValidationError("Merchant ID is required")
	}

	validAmount, err := NewAmount(amount)
	if err != nil {
		return Order{}, err
	}

	switch status {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDisbursed:
	default:
		return Order{}, NewDomainRuleError("Invalid order status")
	}

	return Order{
		ID:         id,
		MerchantID: merchantID,
		Amount:     validAmount,
		Status:     status,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

// UpdateStatus moves the order to the next status. DISBURSED is terminal.
func (o *Order) UpdateStatus(next OrderStatus) error {
	if o.Status == OrderStatusDisbursed {
		return NewDomainRuleError("Order is already disbursed")
	}

	switch next {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDisbursed:
	default:
		return NewDomainRuleError("Invalid order status")
	}

	o.Status = next
	o.UpdatedAt = time.Now().UTC()
	return nil
}
