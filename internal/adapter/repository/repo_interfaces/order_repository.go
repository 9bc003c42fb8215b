package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	GetByID(ctx context.Context, id string) (domain.Order, error)
	FindByMerchantID(ctx context.Context, merchantID string) ([]domain.Order, error)
	// FindByMerchantIDAndDateRangeAndStatus matches order creation times with
	// inclusive bounds on both ends.
	FindByMerchantIDAndDateRangeAndStatus(ctx context.Context, merchantID string, startDate, endDate time.Time, status domain.OrderStatus) ([]domain.Order, error)
	Update(ctx context.Context, order domain.Order) (domain.Order, error)
}
