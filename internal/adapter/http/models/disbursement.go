package models

import (
	"errors"
	"strings"
	"time"
)

type ProcessDisbursementRequest struct {
	Frequency string `json:"frequency"`
}

// Validate only checks presence; whether the frequency is supported is
// decided by the settlement core so the dispatch error keeps its message.
func (r ProcessDisbursementRequest) Validate() error {
	if strings.TrimSpace(r.Frequency) == "" {
		return errors.New("frequency is required")
	}

	return nil
}

type SettleMerchantRequest struct {
	MerchantID string `json:"merchantId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

func (r SettleMerchantRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.MerchantID) == "" {
		errs = append(errs, "merchantId is required")
	}
	if _, err := time.Parse(time.RFC3339, strings.TrimSpace(r.StartDate)); err != nil {
		errs = append(errs, "startDate must be an RFC3339 timestamp")
	}
	if _, err := time.Parse(time.RFC3339, strings.TrimSpace(r.EndDate)); err != nil {
		errs = append(errs, "endDate must be an RFC3339 timestamp")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type DisbursementResponse struct {
	ID          string `json:"id"`
	MerchantID  string `json:"merchantId"`
	TotalAmount string `json:"totalAmount"`
	Fee         string `json:"fee"`
	Reference   string `json:"reference"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	CreatedAt   string `json:"createdAt"`
}

type ProcessDisbursementResponse struct {
	Frequency     string                 `json:"frequency"`
	StartDate     string                 `json:"startDate"`
	EndDate       string                 `json:"endDate"`
	Disbursements []DisbursementResponse `json:"disbursements"`
}

type SettleMerchantResponse struct {
	Settled      bool                  `json:"settled"`
	Disbursement *DisbursementResponse `json:"disbursement,omitempty"`
}
