package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

type MerchantRepository struct {
	db *sql.DB
}

func NewMerchantRepository(db *sql.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

func (r *MerchantRepository) Create(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error) {
	const query = `
INSERT INTO merchants (
	id,
	reference,
	email,
	live_on,
	disbursement_frequency,
	minimum_monthly_fee,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		merchant.ID,
		merchant.Reference,
		merchant.Email,
		merchant.LiveOn,
		merchant.DisbursementFrequency,
		merchant.MinimumMonthlyFee,
		merchant.CreatedAt,
		merchant.UpdatedAt,
	); err != nil {
		return domain.Merchant{}, fmt.Errorf("create merchant: %w", err)
	}

	return merchant, nil
}

func (r *MerchantRepository) GetByID(ctx context.Context, id string) (domain.Merchant, error) {
	const query = `
SELECT id, reference, email, live_on, disbursement_frequency, minimum_monthly_fee, created_at, updated_at
FROM merchants
WHERE id = $1`

	return r.scanMerchant(r.db.QueryRowContext(ctx, query, id))
}

func (r *MerchantRepository) GetByEmail(ctx context.Context, email string) (domain.Merchant, error) {
	const query = `
SELECT id, reference, email, live_on, disbursement_frequency, minimum_monthly_fee, created_at, updated_at
FROM merchants
WHERE email = $1`

	return r.scanMerchant(r.db.QueryRowContext(ctx, query, email))
}

func (r *MerchantRepository) FindAll(ctx context.Context) ([]domain.Merchant, error) {
	const query = `
SELECT id, reference, email, live_on, disbursement_frequency, minimum_monthly_fee, created_at, updated_at
FROM merchants
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()

	return collectMerchants(rows)
}

func (r *MerchantRepository) FindByDisbursementFrequency(ctx context.Context, frequency domain.DisbursementFrequency) ([]domain.Merchant, error) {
	const query = `
SELECT id, reference, email, live_on, disbursement_frequency, minimum_monthly_fee, created_at, updated_at
FROM merchants
WHERE disbursement_frequency = $1
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, frequency)
	if err != nil {
		return nil, fmt.Errorf("find merchants by frequency: %w", err)
	}
	defer rows.Close()

	return collectMerchants(rows)
}

func (r *MerchantRepository) scanMerchant(row *sql.Row) (domain.Merchant, error) {
	var merchant domain.Merchant
	if err := row.Scan(
		&merchant.ID,
		&merchant.Reference,
		&merchant.Email,
		&merchant.LiveOn,
		&merchant.DisbursementFrequency,
		&merchant.MinimumMonthlyFee,
		&merchant.CreatedAt,
		&merchant.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Merchant{}, domain.ErrRecordNotFound
		}
		return domain.Merchant{}, fmt.Errorf("scan merchant: %w", err)
	}

	return merchant, nil
}

func collectMerchants(rows *sql.Rows) ([]domain.Merchant, error) {
	merchants := make([]domain.Merchant, 0)
	for rows.Next() {
		var merchant domain.Merchant
		if err := rows.Scan(
			&merchant.ID,
			&merchant.Reference,
			&merchant.Email,
			&merchant.LiveOn,
			&merchant.DisbursementFrequency,
			&merchant.MinimumMonthlyFee,
			&merchant.CreatedAt,
			&merchant.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan merchant row: %w", err)
		}
		merchants = append(merchants, merchant)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate merchant rows: %w", err)
	}

	return merchants, nil
}
