package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/adapter/repository/memory"
	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/api-sage/disbursement-processor/internal/usecase/services"
)

func TestOrderServiceCreateOrderSuccess(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	svc := services.NewOrderService(orderRepo, merchantRepo)

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)

	resp, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		MerchantID: merchant.ID,
		Amount:     "125.50",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	if resp.Data.Status != "PENDING" {
		t.Fatalf("expected PENDING status, got %s", resp.Data.Status)
	}
	if resp.Data.Amount != "125.50" {
		t.Fatalf("expected amount 125.50, got %s", resp.Data.Amount)
	}
}

func TestOrderServiceCreateOrderUnknownMerchant(t *testing.T) {
	svc := services.NewOrderService(memory.NewOrderRepository(), memory.NewMerchantRepository())

	resp, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		MerchantID: "missing-merchant",
		Amount:     "10",
	})
	if err == nil {
		t.Fatal("expected error for unknown merchant")
	}
	if resp.Message != "Merchant not found" {
		t.Fatalf("unexpected response message: %q", resp.Message)
	}
}

func TestOrderServiceCreateOrderValidation(t *testing.T) {
	svc := services.NewOrderService(memory.NewOrderRepository(), memory.NewMerchantRepository())

	_, err := svc.CreateOrder(context.Background(), models.CreateOrderRequest{
		MerchantID: "",
		Amount:     "-1",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestOrderServiceUpdateStatusTerminal(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	svc := services.NewOrderService(orderRepo, merchantRepo)

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)
	order := seedPendingOrder(t, orderRepo, merchant.ID, 100, time.Now().UTC())

	resp, err := svc.UpdateOrderStatus(context.Background(), models.UpdateOrderStatusRequest{
		OrderID: order.ID,
		Status:  "DISBURSED",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data == nil || resp.Data.Status != "DISBURSED" {
		t.Fatal("expected order to be DISBURSED")
	}

	_, err = svc.UpdateOrderStatus(context.Background(), models.UpdateOrderStatusRequest{
		OrderID: order.ID,
		Status:  "PROCESSING",
	})
	if err == nil {
		t.Fatal("expected error after terminal status")
	}
	if err.Error() != "Order is already disbursed" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestOrderServiceUpdateStatusUnknownStatus(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	svc := services.NewOrderService(orderRepo, merchantRepo)

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)
	order := seedPendingOrder(t, orderRepo, merchant.ID, 100, time.Now().UTC())

	_, err := svc.UpdateOrderStatus(context.Background(), models.UpdateOrderStatusRequest{
		OrderID: order.ID,
		Status:  "SHIPPED",
	})
	if err == nil {
		t.Fatal("expected error for unknown status")
	}
	if err.Error() != "Invalid order status" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestOrderServiceGetOrdersByDateRange(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	svc := services.NewOrderService(orderRepo, merchantRepo)

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)

	inRange := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)
	seedPendingOrder(t, orderRepo, merchant.ID, 100, inRange)
	seedPendingOrder(t, orderRepo, merchant.ID, 200, outOfRange)

	resp, err := svc.GetOrdersByDateRange(context.Background(), models.GetOrdersByDateRangeRequest{
		MerchantID: merchant.ID,
		StartDate:  "2024-03-04T00:00:00Z",
		EndDate:    "2024-03-10T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Data == nil || len(*resp.Data) != 1 {
		t.Fatalf("expected exactly one order in range, got %+v", resp.Data)
	}
}
