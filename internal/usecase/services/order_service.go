package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/disbursement-processor/internal/commons"
	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/api-sage/disbursement-processor/internal/logger"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	orderRepo    repo_interfaces.OrderRepository
	merchantRepo repo_interfaces.MerchantRepository
}

func NewOrderService(orderRepo repo_interfaces.OrderRepository, merchantRepo repo_interfaces.MerchantRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, merchantRepo: merchantRepo}
}

func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error) {
	logger.Info("order service create order request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.OrderResponse]("validation failed", err.Error()), err
	}

	merchantID := strings.TrimSpace(req.MerchantID)
	if _, err := s.merchantRepo.GetByID(ctx, merchantID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.OrderResponse]("Merchant not found"), err
		}
		logger.Error("order service merchant lookup failed", err, logger.Fields{
			"merchantId": merchantID,
		})
		return commons.ErrorResponse[models.OrderResponse]("failed to create order", "Unable to create order right now"), err
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(req.Amount))

	order, err := domain.NewOrder(merchantID, amount)
	if err != nil {
		return commons.ErrorResponse[models.OrderResponse]("validation failed", err.Error()), err
	}

	saved, err := s.orderRepo.Create(ctx, order)
	if err != nil {
		logger.Error("order service create order failed", err, logger.Fields{
			"merchantId": merchantID,
		})
		return commons.ErrorResponse[models.OrderResponse]("failed to create order", "Unable to create order right now"), err
	}

	logger.Info("order service create order success", logger.Fields{
		"orderId":    saved.ID,
		"merchantId": saved.MerchantID,
	})

	return commons.SuccessResponse("order created successfully", toOrderResponse(saved)), nil
}

func (s *OrderService) GetOrdersByMerchant(ctx context.Context, merchantID string) (commons.Response[[]models.OrderResponse], error) {
	merchantID = strings.TrimSpace(merchantID)
	if merchantID == "" {
		err := domain.NewValidationError("Merchant ID is required")
		return commons.ErrorResponse[[]models.OrderResponse]("validation failed", err.Error()), err
	}

	orders, err := s.orderRepo.FindByMerchantID(ctx, merchantID)
	if err != nil {
		logger.Error("order service fetch orders failed", err, logger.Fields{
			"merchantId": merchantID,
		})
		return commons.ErrorResponse[[]models.OrderResponse]("failed to fetch orders", "Unable to fetch orders right now"), err
	}

	return commons.SuccessResponse("orders fetched successfully", toOrderResponses(orders)), nil
}

func (s *OrderService) GetOrdersByDateRange(ctx context.Context, req models.GetOrdersByDateRangeRequest) (commons.Response[[]models.OrderResponse], error) {
	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[[]models.OrderResponse]("validation failed", err.Error()), err
	}

	startDate, _ := time.Parse(time.RFC3339, strings.TrimSpace(req.StartDate))
	endDate, _ := time.Parse(time.RFC3339, strings.TrimSpace(req.EndDate))

	if _, err := domain.NewDateRange(startDate, endDate); err != nil {
		return commons.ErrorResponse[[]models.OrderResponse]("validation failed", err.Error()), err
	}

	orders, err := s.orderRepo.FindByMerchantIDAndDateRangeAndStatus(
		ctx,
		strings.TrimSpace(req.MerchantID),
		startDate,
		endDate,
		domain.OrderStatusPending,
	)
	if err != nil {
		logger.Error("order service fetch orders by range failed", err, logger.Fields{
			"merchantId": req.MerchantID,
		})
		return commons.ErrorResponse[[]models.OrderResponse]("failed to fetch orders", "Unable to fetch orders right now"), err
	}

	return commons.SuccessResponse("orders fetched successfully", toOrderResponses(orders)), nil
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error) {
	logger.Info("order service update status request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.OrderResponse]("validation failed", err.Error()), err
	}

	order, err := s.orderRepo.GetByID(ctx, strings.TrimSpace(req.OrderID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.OrderResponse]("Order not found"), err
		}
		logger.Error("order service order lookup failed", err, logger.Fields{
			"orderId": req.OrderID,
		})
		return commons.ErrorResponse[models.OrderResponse]("failed to update order", "Unable to update order right now"), err
	}

	next := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	if err := order.UpdateStatus(next); err != nil {
		return commons.ErrorResponse[models.OrderResponse]("validation failed", err.Error()), err
	}

	saved, err := s.orderRepo.Update(ctx, order)
	if err != nil {
		logger.Error("order service update order failed", err, logger.Fields{
			"orderId": order.ID,
		})
		return commons.ErrorResponse[models.OrderResponse]("failed to update order", "Unable to update order right now"), err
	}

	logger.Info("order service update status success", logger.Fields{
		"orderId": saved.ID,
		"status":  string(saved.Status),
	})

	return commons.SuccessResponse("order status updated successfully", toOrderResponse(saved)), nil
}

func toOrderResponses(orders []domain.Order) []models.OrderResponse {
	responses := make([]models.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, toOrderResponse(order))
	}
	return responses
}

func toOrderResponse(order domain.Order) models.OrderResponse {
	return models.OrderResponse{
		ID:         order.ID,
		MerchantID: order.MerchantID,
		Amount:     order.Amount.Value().StringFixed(2),
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  order.UpdatedAt.Format(time.RFC3339),
	}
}
