package memory

import (
	"context"
	"sync"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

// MerchantRepository is a map-backed store used in tests and local runs.
type MerchantRepository struct {
	mu        sync.RWMutex
	merchants map[string]domain.Merchant
}

func NewMerchantRepository() *MerchantRepository {
	return &MerchantRepository{merchants: make(map[string]domain.Merchant)}
}

func (r *MerchantRepository) Create(_ context.Context, merchant domain.Merchant) (domain.Merchant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.merchants[merchant.ID] = merchant
	return merchant, nil
}

func (r *MerchantRepository) GetByID(_ context.Context, id string) (domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	merchant, ok := r.merchants[id]
	if !ok {
		return domain.Merchant{}, domain.ErrRecordNotFound
	}
	return merchant, nil
}

func (r *MerchantRepository) GetByEmail(_ context.Context, email string) (domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, merchant := range r.merchants {
		if merchant.Email == email {
			return merchant, nil
		}
	}
	return domain.Merchant{}, domain.ErrRecordNotFound
}

func (r *MerchantRepository) FindAll(_ context.Context) ([]domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	merchants := make([]domain.Merchant, 0, len(r.merchants))
	for _, merchant := range r.merchants {
		merchants = append(merchants, merchant)
	}
	return merchants, nil
}

func (r *MerchantRepository) FindByDisbursementFrequency(_ context.Context, frequency domain.DisbursementFrequency) ([]domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	merchants := make([]domain.Merchant, 0)
	for _, merchant := range r.merchants {
		if merchant.DisbursementFrequency == frequency {
			merchants = append(merchants, merchant)
		}
	}
	return merchants, nil
}
