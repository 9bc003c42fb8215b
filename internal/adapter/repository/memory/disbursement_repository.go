package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

// DisbursementRepository is a map-backed store used in tests and local
// runs. It enforces the same merchant/window uniqueness as the postgres
// schema.
type DisbursementRepository struct {
	mu            sync.RWMutex
	disbursements map[string]domain.Disbursement
}

func NewDisbursementRepository() *DisbursementRepository {
	return &DisbursementRepository{disbursements: make(map[string]domain.Disbursement)}
}

func (r *DisbursementRepository) Create(_ context.Context, disbursement domain.Disbursement) (domain.Disbursement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.disbursements {
		if existing.MerchantID == disbursement.MerchantID &&
			existing.StartDate.Equal(disbursement.StartDate) &&
			existing.EndDate.Equal(disbursement.EndDate) {
			return domain.Disbursement{}, domain.ErrDisbursementExists
		}
	}

	r.disbursements[disbursement.ID] = disbursement
	return disbursement, nil
}

func (r *DisbursementRepository) GetByID(_ context.Context, id string) (domain.Disbursement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	disbursement, ok := r.disbursements[id]
	if !ok {
		return domain.Disbursement{}, domain.ErrRecordNotFound
	}
	return disbursement, nil
}

func (r *DisbursementRepository) FindAll(_ context.Context) ([]domain.Disbursement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	disbursements := make([]domain.Disbursement, 0, len(r.disbursements))
	for _, disbursement := range r.disbursements {
		disbursements = append(disbursements, disbursement)
	}
	return disbursements, nil
}

func (r *DisbursementRepository) FindByMerchantAndDate(_ context.Context, merchantID string, date time.Time) (*domain.Disbursement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, disbursement := range r.disbursements {
		if disbursement.MerchantID != merchantID {
			continue
		}
		if date.Before(disbursement.StartDate) || date.After(disbursement.EndDate) {
			continue
		}
		found := disbursement
		return &found, nil
	}
	return nil, nil
}
