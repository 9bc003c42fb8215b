package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DisbursementFrequency string

const (
	DisbursementFrequencyDaily  DisbursementFrequency = "DAILY"
	DisbursementFrequencyWeekly DisbursementFrequency = "WEEKLY"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Merchant struct {
	ID                    string
	Reference             string
	Email                 string
	LiveOn                time.Time
	DisbursementFrequency DisbursementFrequency
	MinimumMonthlyFee     decimal.Decimal
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func NewMerchant(
	reference string,
	email string,
	liveOn time.Time,
	frequency DisbursementFrequency,
	minimumMonthlyFee decimal.Decimal,
) (Merchant, error) {
	reference = strings.TrimSpace(reference)
	email = strings.TrimSpace(email)

	if reference == "" {
		return Merchant{}, NewValidationError("Reference is required")
	}
	if email == "" {
		return Merchant{}, NewValidationError("Email is required")
	}
	if !emailPattern.MatchString(email) {
		return Merchant{}, NewValidationError("Invalid email format")
	}
	if frequency == "" {
		return Merchant{}, NewValidationError("Disbursement frequency is required")
	}
	if frequency != DisbursementFrequencyDaily && frequency != DisbursementFrequencyWeekly {
		return Merchant{}, NewValidationError("Invalid disbursement frequency")
	}
	if minimumMonthlyFee.IsNegative() {
		return Merchant{}, NewValidationError("Minimum monthly fee cannot be negative")
	}

	now := time.Now().UTC()
	return Merchant{
		ID:                    uuid.NewString(),
		Reference:             reference,
		Email:                 email,
		LiveOn:                liveOn,
		DisbursementFrequency: frequency,
		MinimumMonthlyFee:     minimumMonthlyFee,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, nil
}
