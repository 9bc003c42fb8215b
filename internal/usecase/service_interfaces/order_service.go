package service_interfaces

import (
	"context"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/commons"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (commons.Response[models.OrderResponse], error)
	GetOrdersByMerchant(ctx context.Context, merchantID string) (commons.Response[[]models.OrderResponse], error)
	GetOrdersByDateRange(ctx context.Context, req models.GetOrdersByDateRangeRequest) (commons.Response[[]models.OrderResponse], error)
	UpdateOrderStatus(ctx context.Context, req models.UpdateOrderStatusRequest) (commons.Response[models.OrderResponse], error)
}
