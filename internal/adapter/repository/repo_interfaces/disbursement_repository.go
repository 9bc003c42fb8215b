package repo_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

type DisbursementRepository interface {
	Create(ctx context.Context, disbursement domain.Disbursement) (domain.Disbursement, error)
	GetByID(ctx context.Context, id string) (domain.Disbursement, error)
	FindAll(ctx context.Context) ([]domain.Disbursement, error)
	// FindByMerchantAndDate returns the disbursement whose window contains
	// the given date, or nil when there is none.
	FindByMerchantAndDate(ctx context.Context, merchantID string, date time.Time) (*domain.Disbursement, error)
}
