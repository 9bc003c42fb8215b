package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	MerchantID string `json:"merchantId"`
	Amount     string `json:"amount"`
}

func (r CreateOrderRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.MerchantID) == "" {
		errs = append(errs, "merchantId is required")
	}

	amount := strings.TrimSpace(r.Amount)
	if amount == "" {
		errs = append(errs, "amount is required")
	} else {
		value, err := decimal.NewFromString(amount)
		if err != nil {
			errs = append(errs, "amount must be numeric")
		} else if value.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, "amount must be greater than zero")
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type UpdateOrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

func (r UpdateOrderStatusRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.OrderID) == "" {
		errs = append(errs, "orderId is required")
	}
	if strings.TrimSpace(r.Status) == "" {
		errs = append(errs, "status is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type GetOrdersByDateRangeRequest struct {
	MerchantID string `json:"merchantId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
}

func (r GetOrdersByDateRangeRequest) Validate() error {
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

type OrderResponse struct {
	ID         string `json:"id"`
	MerchantID string `json:"merchantId"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}
