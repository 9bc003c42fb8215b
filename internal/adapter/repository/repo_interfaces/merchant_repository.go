package repo_interfaces

import (
	"context"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

type MerchantRepository interface {
	Create(ctx context.Context, merchant domain.Merchant) (domain.Merchant, error)
	GetByID(ctx context.Context, id string) (domain.Merchant, error)
	GetByEmail(ctx context.Context, email string) (domain.Merchant, error)
	FindAll(ctx context.Context) ([]domain.Merchant, error)
	FindByDisbursementFrequency(ctx context.Context, frequency domain.DisbursementFrequency) ([]domain.Merchant, error)
}
