package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/disbursement-processor/internal/commons"
	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/api-sage/disbursement-processor/internal/logger"
	"github.com/shopspring/decimal"
)

type MerchantService struct {
	merchantRepo repo_interfaces.MerchantRepository
}

func NewMerchantService(merchantRepo repo_interfaces.MerchantRepository) *MerchantService {
	return &MerchantService{merchantRepo: merchantRepo}
}

func (s *MerchantService) CreateMerchant(ctx context.Context, req models.CreateMerchantRequest) (commons.Response[models.MerchantResponse], error) {
	logger.Info("merchant service create merchant request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.MerchantResponse]("validation failed", err.Error()), err
	}

	email := strings.TrimSpace(req.Email)
	if _, err := s.merchantRepo.GetByEmail(ctx, email); err == nil {
		conflictErr := errors.New("merchant with this email already exists")
		return commons.ErrorResponse[models.MerchantResponse]("validation failed", conflictErr.Error()), conflictErr
	} else if !errors.Is(err, domain.ErrRecordNotFound) {
		logger.Error("merchant service email lookup failed", err, nil)
		return commons.ErrorResponse[models.MerchantResponse]("failed to create merchant", "Unable to create merchant right now"), err
	}

	liveOn := time.Now().UTC()
	if strings.TrimSpace(req.LiveOn) != "" {
		liveOn, _ = time.Parse(time.RFC3339, strings.TrimSpace(req.LiveOn))
	}

	minimumMonthlyFee := decimal.Zero
	if strings.TrimSpace(req.MinimumMonthlyFee) != "" {
		minimumMonthlyFee, _ = decimal.NewFromString(strings.TrimSpace(req.MinimumMonthlyFee))
	}

	merchant, err := domain.NewMerchant(
		req.Reference,
		email,
		liveOn,
		domain.DisbursementFrequency(strings.ToUpper(strings.TrimSpace(req.DisbursementFrequency))),
		minimumMonthlyFee,
	)
	if err != nil {
		return commons.ErrorResponse[models.MerchantResponse]("validation failed", err.Error()), err
	}

	saved, err := s.merchantRepo.Create(ctx, merchant)
	if err != nil {
		logger.Error("merchant service create merchant failed", err, logger.Fields{
			"reference": merchant.Reference,
		})
		return commons.ErrorResponse[models.MerchantResponse]("failed to create merchant", "Unable to create merchant right now"), err
	}

	logger.Info("merchant service create merchant success", logger.Fields{
		"merchantId": saved.ID,
		"frequency":  string(saved.DisbursementFrequency),
	})

	return commons.SuccessResponse("merchant created successfully", toMerchantResponse(saved)), nil
}

func (s *MerchantService) GetMerchant(ctx context.Context, id string) (commons.Response[models.MerchantResponse], error) {
	id = strings.TrimSpace(id)
	if id == "" {
		err := errors.New("merchantId is required")
		return commons.ErrorResponse[models.MerchantResponse]("validation failed", err.Error()), err
	}

	merchant, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.MerchantResponse]("Merchant not found"), err
		}
		logger.Error("merchant service get merchant failed", err, logger.Fields{
			"merchantId": id,
		})
		return commons.ErrorResponse[models.MerchantResponse]("failed to fetch merchant", "Unable to fetch merchant right now"), err
	}

	return commons.SuccessResponse("merchant fetched successfully", toMerchantResponse(merchant)), nil
}

func (s *MerchantService) ListMerchants(ctx context.Context) (commons.Response[[]models.MerchantResponse], error) {
	merchants, err := s.merchantRepo.FindAll(ctx)
	if err != nil {
		logger.Error("merchant service list merchants failed", err, nil)
		return commons.ErrorResponse[[]models.MerchantResponse]("failed to fetch merchants", "Unable to fetch merchants right now"), err
	}

	responses := make([]models.MerchantResponse, 0, len(merchants))
	for _, merchant := range merchants {
		responses = append(responses, toMerchantResponse(merchant))
	}

	return commons.SuccessResponse("merchants fetched successfully", responses), nil
}

func toMerchantResponse(merchant domain.Merchant) models.MerchantResponse {
	return models.MerchantResponse{
		ID:                    merchant.ID,
		Reference:             merchant.Reference,
		Email:                 merchant.Email,
		LiveOn:                merchant.LiveOn.Format(time.RFC3339),
		DisbursementFrequency: string(merchant.DisbursementFrequency),
		MinimumMonthlyFee:     merchant.MinimumMonthlyFee.StringFixed(2),
		CreatedAt:             merchant.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             merchant.UpdatedAt.Format(time.RFC3339),
	}
}
