package service_interfaces

import (
	"context"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/commons"
)

type MerchantService interface {
	CreateMerchant(ctx context.Context, req models.CreateMerchantRequest) (commons.Response[models.MerchantResponse], error)
	GetMerchant(ctx context.Context, id string) (commons.Response[models.MerchantResponse], error)
	ListMerchants(ctx context.Context) (commons.Response[[]models.MerchantResponse], error)
}
