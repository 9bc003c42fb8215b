package service_interfaces

import (
	"context"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/commons"
	"github.com/api-sage/disbursement-processor/internal/domain"
)

type DisbursementService interface {
	ProcessByFrequency(ctx context.Context, frequency domain.DisbursementFrequency) ([]domain.Disbursement, domain.DateRange, error)
	ProcessMerchantWindow(ctx context.Context, merchantID string, startDate, endDate time.Time) (*domain.Disbursement, error)
	Process(ctx context.Context, req models.ProcessDisbursementRequest) (commons.Response[models.ProcessDisbursementResponse], error)
	SettleMerchant(ctx context.Context, req models.SettleMerchantRequest) (commons.Response[models.SettleMerchantResponse], error)
	ListDisbursements(ctx context.Context) (commons.Response[[]models.DisbursementResponse], error)
	GetByMerchantAndDate(ctx context.Context, merchantID string, date time.Time) (commons.Response[models.DisbursementResponse], error)
}
