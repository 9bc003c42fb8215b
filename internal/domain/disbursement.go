package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Disbursement is the aggregate record of one settlement event for a
// merchant and window. Immutable after construction.
type Disbursement struct {
	ID          string
	MerchantID  string
	TotalAmount Amount
	Fee         Fee
	Reference   Reference
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}

func NewDisbursement(merchantID string, totalAmount decimal.Decimal, window DateRange) (Disbursement, error) {
	if strings.TrimSpace(merchantID) == "" {
		return Disbursement{}, NewValidationError("Merchant ID is required")
	}

	validTotal, err := NewAmount(totalAmount)
	if err != nil {
		return Disbursement{}, err
	}

	now := time.Now().UTC()
	reference, err := NewReference(merchantID, now)
	if err != nil {
		return Disbursement{}, err
	}

	return Disbursement{
		ID:          uuid.NewString(),
		MerchantID:  merchantID,
		TotalAmount: validTotal,
		Fee:         NewFee(validTotal),
		Reference:   reference,
		StartDate:   window.StartDate,
		EndDate:     window.EndDate,
		CreatedAt:   now,
	}, nil
}

// ReconstructDisbursement rebuilds a persisted disbursement. The stored fee
// is validated against the total rather than recomputed.
func ReconstructDisbursement(
	id string,
	merchantID string,
	totalAmount decimal.Decimal,
	fee decimal.Decimal,
	reference string,
	startDate time.Time,
	endDate time.Time,
	createdAt time.Time,
) (Disbursement, error) {
	if strings.TrimSpace(id) == "" {
		return Disbursement{}, NewValidationError("Disbursement ID is required")
	}
	if strings.TrimSpace(merchantID) == "" {
		return Disbursement{}, NewValidationError("Merchant ID is required")
	}

	validTotal, err := NewAmount(totalAmount)
	if err != nil {
		return Disbursement{}, err
	}

	validFee, err := NewFeeFromValue(fee, validTotal)
	if err != nil {
		return Disbursement{}, err
	}

	return Disbursement{
		ID:          id,
		MerchantID:  merchantID,
		TotalAmount: validTotal,
		Fee:         validFee,
		Reference:   Reference{value: reference},
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   createdAt,
	}, nil
}
