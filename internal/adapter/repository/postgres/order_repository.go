package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	const query = `
INSERT INTO orders (
	id,
	merchant_id,
	amount,
	status,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		order.ID,
		order.MerchantID,
		order.Amount.Value(),
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	); err != nil {
		return domain.Order{}, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (domain.Order, error) {
	const query = `
SELECT id, merchant_id, amount, status, created_at, updated_at
FROM orders
WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)

	order, err := scanOrder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, domain.ErrRecordNotFound
		}
		return domain.Order{}, fmt.Errorf("get order by id: %w", err)
	}

	return order, nil
}

func (r *OrderRepository) FindByMerchantID(ctx context.Context, merchantID string) ([]domain.Order, error) {
	const query = `
SELECT id, merchant_id, amount, status, created_at, updated_at
FROM orders
WHERE merchant_id = $1
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, merchantID)
	if err != nil {
		return nil, fmt.Errorf("find orders by merchant: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) FindByMerchantIDAndDateRangeAndStatus(
	ctx context.Context,
	merchantID string,
	startDate time.Time,
	endDate time.Time,
	status domain.OrderStatus,
) ([]domain.Order, error) {
	const query = `
SELECT id, merchant_id, amount, status, created_at, updated_at
FROM orders
WHERE merchant_id = $1
  AND status = $2
  AND created_at >= $3
  AND created_at <= $4
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, merchantID, status, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("find orders by merchant, range and status: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepository) Update(ctx context.Context, order domain.Order) (domain.Order, error) {
	const query = `
UPDATE orders
SET amount = $2, status = $3, updated_at = $4
WHERE id = $1`

	result, err := r.db.ExecContext(
		ctx,
		query,
		order.ID,
		order.Amount.Value(),
		order.Status,
		order.UpdatedAt,
	)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order rows affected: %w", err)
	}
	if affected == 0 {
		return domain.Order{}, domain.ErrRecordNotFound
	}

	return order, nil
}

func scanOrder(scan func(dest ...any) error) (domain.Order, error) {
	var (
		id         string
		merchantID string
		amount     decimal.Decimal
		status     string
		createdAt  time.Time
		updatedAt  time.Time
	)

	if err := scan(&id, &merchantID, &amount, &status, &createdAt, &updatedAt); err != nil {
		return domain.Order{}, err
	}

	return domain.ReconstructOrder(id, merchantID, amount, domain.OrderStatus(status), createdAt, updatedAt)
}

func collectOrders(rows *sql.Rows) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}
