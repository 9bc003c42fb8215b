package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateMerchantRequest struct {
	Reference             string `json:"reference"`
	Email                 string `json:"email"`
	LiveOn                string `json:"liveOn"`
	DisbursementFrequency string `json:"disbursementFrequency"`
	MinimumMonthlyFee     string `json:"minimumMonthlyFee"`
}

func (r CreateMerchantRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Reference) == "" {
		errs = append(errs, "reference is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}

	if strings.TrimSpace(r.LiveOn) != "" {
		if _, err := time.Parse(time.RFC3339, strings.TrimSpace(r.LiveOn)); err != nil {
			errs = append(errs, "liveOn must be an RFC3339 timestamp")
		}
	}

	frequency := strings.ToUpper(strings.TrimSpace(r.DisbursementFrequency))
	if frequency == "" {
		errs = append(errs, "disbursementFrequency is required")
	} else if frequency != "DAILY" && frequency != "WEEKLY" {
		errs = append(errs, "disbursementFrequency must be one of DAILY, WEEKLY")
	}

	if strings.TrimSpace(r.MinimumMonthlyFee) != "" {
		fee, err := decimal.NewFromString(strings.TrimSpace(r.MinimumMonthlyFee))
		if err != nil {
			errs = append(errs, "minimumMonthlyFee must be numeric")
		} else if fee.IsNegative() {
			errs = append(errs, "minimumMonthlyFee cannot be negative")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type MerchantResponse struct {
	ID                    string `json:"id"`
	Reference             string `json:"reference"`
	Email                 string `json:"email"`
	LiveOn                string `json:"liveOn"`
	DisbursementFrequency string `json:"disbursementFrequency"`
	MinimumMonthlyFee     string `json:"minimumMonthlyFee"`
	CreatedAt             string `json:"createdAt"`
	UpdatedAt             string `json:"updatedAt"`
}
