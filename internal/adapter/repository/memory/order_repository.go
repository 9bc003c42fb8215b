package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

// OrderRepository is a map-backed store used in tests and local runs.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]domain.Order)}
}

func (r *OrderRepository) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders[order.ID] = order
	return order, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id string) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrRecordNotFound
	}
	return order, nil
}

func (r *OrderRepository) FindByMerchantID(_ context.Context, merchantID string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.MerchantID == merchantID {
			orders = append(orders, order)
		}
	}
	sortOrders(orders)
	return orders, nil
}

func (r *OrderRepository) FindByMerchantIDAndDateRangeAndStatus(
	_ context.Context,
	merchantID string,
	startDate time.Time,
	endDate time.Time,
	status domain.OrderStatus,
) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0)
	for _, order := range r.orders {
		if order.MerchantID != merchantID || order.Status != status {
			continue
		}
		// Inclusive on both bounds, matching the SQL implementation.
		if order.CreatedAt.Before(startDate) || order.CreatedAt.After(endDate) {
			continue
		}
		orders = append(orders, order)
	}
	sortOrders(orders)
	return orders, nil
}

func (r *OrderRepository) Update(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[order.ID]; !ok {
		return domain.Order{}, domain.ErrRecordNotFound
	}
	r.orders[order.ID] = order
	return order, nil
}

func sortOrders(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}
