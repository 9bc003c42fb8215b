package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type DisbursementRepository struct {
	db *sql.DB
}

func NewDisbursementRepository(db *sql.DB) *DisbursementRepository {
	return &DisbursementRepository{db: db}
}

func (r *DisbursementRepository) Create(ctx context.Context, disbursement domain.Disbursement) (domain.Disbursement, error) {
	const query = `
INSERT INTO disbursements (
	id,
	merchant_id,
	total_amount,
	fee,
	reference,
	start_date,
	end_date,
	created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.db.ExecContext(
		ctx,
		query,
		disbursement.ID,
		disbursement.MerchantID,
		disbursement.TotalAmount.Value(),
		disbursement.Fee.Value(),
		disbursement.Reference.Value(),
		disbursement.StartDate,
		disbursement.EndDate,
		disbursement.CreatedAt,
	); err != nil {
		if isUniqueViolation(err) {
			return domain.Disbursement{}, domain.ErrDisbursementExists
		}
		return domain.Disbursement{}, fmt.Errorf("create disbursement: %w", err)
	}

	return disbursement, nil
}

func (r *DisbursementRepository) GetByID(ctx context.Context, id string) (domain.Disbursement, error) {
	const query = `
SELECT id, merchant_id, total_amount, fee, reference, start_date, end_date, created_at
FROM disbursements
WHERE id = $1`

	disbursement, err := scanDisbursement(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Disbursement{}, domain.ErrRecordNotFound
		}
		return domain.Disbursement{}, fmt.Errorf("get disbursement by id: %w", err)
	}

	return disbursement, nil
}

func (r *DisbursementRepository) FindAll(ctx context.Context) ([]domain.Disbursement, error) {
	const query = `
SELECT id, merchant_id, total_amount, fee, reference, start_date, end_date, created_at
FROM disbursements
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list disbursements: %w", err)
	}
	defer rows.Close()

	disbursements := make([]domain.Disbursement, 0)
	for rows.Next() {
		disbursement, err := scanDisbursement(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan disbursement row: %w", err)
		}
		disbursements = append(disbursements, disbursement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate disbursement rows: %w", err)
	}

	return disbursements, nil
}

func (r *DisbursementRepository) FindByMerchantAndDate(ctx context.Context, merchantID string, date time.Time) (*domain.Disbursement, error) {
	const query = `
SELECT id, merchant_id, total_amount, fee, reference, start_date, end_date, created_at
FROM disbursements
WHERE merchant_id = $1
  AND start_date <= $2
  AND end_date >= $2
ORDER BY created_at DESC
LIMIT 1`

	disbursement, err := scanDisbursement(r.db.QueryRowContext(ctx, query, merchantID, date).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find disbursement by merchant and date: %w", err)
	}

	return &disbursement, nil
}

func scanDisbursement(scan func(dest ...any) error) (domain.Disbursement, error) {
	var (
		id          string
		merchantID  string
		totalAmount decimal.Decimal
		fee         decimal.Decimal
		reference   string
		startDate   time.Time
		endDate     time.Time
		createdAt   time.Time
	)

	if err := scan(&id, &merchantID, &totalAmount, &fee, &reference, &startDate, &endDate, &createdAt); err != nil {
		return domain.Disbursement{}, err
	}

	return domain.ReconstructDisbursement(id, merchantID, totalAmount, fee, reference, startDate, endDate, createdAt)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == "23505"
	}
	return false
}
