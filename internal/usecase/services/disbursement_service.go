package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/models"
	"github.com/api-sage/disbursement-processor/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/disbursement-processor/internal/commons"
	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/api-sage/disbursement-processor/internal/logger"
	"github.com/api-sage/disbursement-processor/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DisbursementService struct {
	merchantRepo     repo_interfaces.MerchantRepository
	orderRepo        repo_interfaces.OrderRepository
	disbursementRepo repo_interfaces.DisbursementRepository
	rangeStrategy    service_interfaces.RangeStrategy

	// Serializes settlement cycles for the same merchant and window.
	locksMu     sync.Mutex
	windowLocks map[string]*sync.Mutex
}

func NewDisbursementService(
	merchantRepo repo_interfaces.MerchantRepository,
	orderRepo repo_interfaces.OrderRepository,
	disbursementRepo repo_interfaces.DisbursementRepository,
	rangeStrategy service_interfaces.RangeStrategy,
) *DisbursementService {
	return &DisbursementService{
		merchantRepo:     merchantRepo,
		orderRepo:        orderRepo,
		disbursementRepo: disbursementRepo,
		rangeStrategy:    rangeStrategy,
		windowLocks:      make(map[string]*sync.Mutex),
	}
}

// ProcessByFrequency settles every merchant enrolled at the given frequency
// against a single window resolved once for the whole run. A repository
// error aborts the failing merchant's cycle and is surfaced together with
// the disbursements already created; completed merchants are not rolled
// back.
func (s *DisbursementService) ProcessByFrequency(ctx context.Context, frequency domain.DisbursementFrequency) ([]domain.Disbursement, domain.DateRange, error) {
	window, err := s.rangeStrategy.Execute(frequency, time.Now())
	if err != nil {
		logger.Error("disbursement service unsupported frequency", err, logger.Fields{
			"frequency": string(frequency),
		})
		return nil, domain.DateRange{}, err
	}

	merchants, err := s.merchantRepo.FindByDisbursementFrequency(ctx, frequency)
	if err != nil {
		logger.Error("disbursement service fetch merchants failed", err, logger.Fields{
			"frequency": string(frequency),
		})
		return nil, window, fmt.Errorf("find merchants by frequency: %w", err)
	}

	logger.Info("disbursement service settlement run started", logger.Fields{
		"frequency": string(frequency),
		"merchants": len(merchants),
		"startDate": window.StartDate,
		"endDate":   window.EndDate,
	})

	disbursements := make([]domain.Disbursement, 0, len(merchants))
	for _, merchant := range merchants {
		disbursement, err := s.settleMerchant(ctx, merchant.ID, window)
		if err != nil {
			return disbursements, window, err
		}
		if disbursement == nil {
			continue
		}
		disbursements = append(disbursements, *disbursement)
	}

	logger.Info("disbursement service settlement run completed", logger.Fields{
		"frequency":     string(frequency),
		"disbursements": len(disbursements),
	})

	return disbursements, window, nil
}

// ProcessMerchantWindow settles a single merchant against an explicit
// window. Returns nil when the merchant has no pending orders in range.
func (s *DisbursementService) ProcessMerchantWindow(ctx context.Context, merchantID string, startDate, endDate time.Time) (*domain.Disbursement, error) {
	if strings.TrimSpace(merchantID) == "" {
		return nil, domain.NewValidationError("Merchant ID is required")
	}

	window, err := domain.NewDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	return s.settleMerchant(ctx, merchantID, window)
}

func (s *DisbursementService) settleMerchant(ctx context.Context, merchantID string, window domain.DateRange) (*domain.Disbursement, error) {
	unlock := s.lockWindow(merchantID, window)
	defer unlock()

	pendingOrders, err := s.orderRepo.FindByMerchantIDAndDateRangeAndStatus(
		ctx,
		merchantID,
		window.StartDate,
		window.EndDate,
		domain.OrderStatusPending,
	)
	if err != nil {
		logger.Error("disbursement service fetch pending orders failed", err, logger.Fields{
			"merchantId": merchantID,
		})
		return nil, fmt.Errorf("find pending orders: %w", err)
	}

	if len(pendingOrders) == 0 {
		logger.Info("disbursement service merchant skipped, no pending orders", logger.Fields{
			"merchantId": merchantID,
		})
		return nil, nil
	}

	totalAmount := decimal.Zero
	for _, order := range pendingOrders {
		totalAmount = totalAmount.Add(order.Amount.Value())
	}

	disbursement, err := domain.NewDisbursement(merchantID, totalAmount, window)
	if err != nil {
		return nil, err
	}

	saved, err := s.disbursementRepo.Create(ctx, disbursement)
	if err != nil {
		logger.Error("disbursement service create disbursement failed", err, logger.Fields{
			"merchantId": merchantID,
		})
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range pendingOrders {
		order := pendingOrders[i]
		g.Go(func() error {
			if err := order.UpdateStatus(domain.OrderStatusDisbursed); err != nil {
				return err
			}
			if _, err := s.orderRepo.Update(gctx, order); err != nil {
				return fmt.Errorf("update order %s: %w", order.ID, err)
			}
			return nil
		})
	}

	// A failed update does not roll back the disbursement or sibling
	// updates; the error is surfaced as-is.
	if err := g.Wait(); err != nil {
		logger.Error("disbursement service order fan-out failed", err, logger.Fields{
			"merchantId":     merchantID,
			"disbursementId": saved.ID,
		})
		return nil, err
	}

	logger.Info("disbursement service merchant settled", logger.Fields{
		"merchantId":  merchantID,
		"reference":   saved.Reference.Value(),
		"totalAmount": saved.TotalAmount.Value(),
		"fee":         saved.Fee.Value(),
		"orders":      len(pendingOrders),
	})

	return &saved, nil
}

func (s *DisbursementService) lockWindow(merchantID string, window domain.DateRange) func() {
	key := merchantID + "|" + window.StartDate.UTC().Format(time.RFC3339) + "|" + window.EndDate.UTC().Format(time.RFC3339)

	s.locksMu.Lock()
	lock, ok := s.windowLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.windowLocks[key] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (s *DisbursementService) Process(ctx context.Context, req models.ProcessDisbursementRequest) (commons.Response[models.ProcessDisbursementResponse], error) {
	logger.Info("disbursement service process request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ProcessDisbursementResponse]("validation failed", err.Error()), err
	}

	frequency := domain.DisbursementFrequency(strings.ToUpper(strings.TrimSpace(req.Frequency)))

	disbursements, window, err := s.ProcessByFrequency(ctx, frequency)
	if err != nil {
		var ruleErr *domain.DomainRuleError
		if errors.As(err, &ruleErr) {
			return commons.ErrorResponse[models.ProcessDisbursementResponse]("validation failed", err.Error()), err
		}
		return commons.ErrorResponse[models.ProcessDisbursementResponse]("failed to process disbursements", "Unable to process disbursements right now"), err
	}

	response := models.ProcessDisbursementResponse{
		Frequency:     string(frequency),
		StartDate:     window.StartDate.Format(time.RFC3339),
		EndDate:       window.EndDate.Format(time.RFC3339),
		Disbursements: toDisbursementResponses(disbursements),
	}

	return commons.SuccessResponse("disbursements processed successfully", response), nil
}

func (s *DisbursementService) SettleMerchant(ctx context.Context, req models.SettleMerchantRequest) (commons.Response[models.SettleMerchantResponse], error) {
	logger.Info("disbursement service settle merchant request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.SettleMerchantResponse]("validation failed", err.Error()), err
	}

	startDate, _ := time.Parse(time.RFC3339, strings.TrimSpace(req.StartDate))
	endDate, _ := time.Parse(time.RFC3339, strings.TrimSpace(req.EndDate))

	disbursement, err := s.ProcessMerchantWindow(ctx, strings.TrimSpace(req.MerchantID), startDate, endDate)
	if err != nil {
		var validationErr *domain.ValidationError
		var ruleErr *domain.DomainRuleError
		if errors.As(err, &validationErr) || errors.As(err, &ruleErr) {
			return commons.ErrorResponse[models.SettleMerchantResponse]("validation failed", err.Error()), err
		}
		return commons.ErrorResponse[models.SettleMerchantResponse]("failed to settle merchant", "Unable to settle merchant right now"), err
	}

	if disbursement == nil {
		return commons.SuccessResponse("no pending orders in window", models.SettleMerchantResponse{Settled: false}), nil
	}

	response := toDisbursementResponse(*disbursement)
	return commons.SuccessResponse("merchant settled successfully", models.SettleMerchantResponse{
		Settled:      true,
		Disbursement: &response,
	}), nil
}

func (s *DisbursementService) ListDisbursements(ctx context.Context) (commons.Response[[]models.DisbursementResponse], error) {
	disbursements, err := s.disbursementRepo.FindAll(ctx)
	if err != nil {
		logger.Error("disbursement service list failed", err, nil)
		return commons.ErrorResponse[[]models.DisbursementResponse]("failed to fetch disbursements", "Unable to fetch disbursements right now"), err
	}

	return commons.SuccessResponse("disbursements fetched successfully", toDisbursementResponses(disbursements)), nil
}

func (s *DisbursementService) GetByMerchantAndDate(ctx context.Context, merchantID string, date time.Time) (commons.Response[models.DisbursementResponse], error) {
	merchantID = strings.TrimSpace(merchantID)
	if merchantID == "" {
		err := fmt.Errorf("merchantId is required")
		return commons.ErrorResponse[models.DisbursementResponse]("validation failed", err.Error()), err
	}

	disbursement, err := s.disbursementRepo.FindByMerchantAndDate(ctx, merchantID, date)
	if err != nil {
		logger.Error("disbursement service find by merchant and date failed", err, logger.Fields{
			"merchantId": merchantID,
		})
		return commons.ErrorResponse[models.DisbursementResponse]("failed to fetch disbursement", "Unable to fetch disbursement right now"), err
	}

	if disbursement == nil {
		return commons.ErrorResponse[models.DisbursementResponse]("Disbursement not found"), domain.ErrRecordNotFound
	}

	return commons.SuccessResponse("disbursement fetched successfully", toDisbursementResponse(*disbursement)), nil
}

func toDisbursementResponses(disbursements []domain.Disbursement) []models.DisbursementResponse {
	responses := make([]models.DisbursementResponse, 0, len(disbursements))
	for _, disbursement := range disbursements {
		responses = append(responses, toDisbursementResponse(disbursement))
	}
	return responses
}

func toDisbursementResponse(disbursement domain.Disbursement) models.DisbursementResponse {
	return models.DisbursementResponse{
		ID:          disbursement.ID,
		MerchantID:  disbursement.MerchantID,
		TotalAmount: disbursement.TotalAmount.Value().StringFixed(2),
		Fee:         disbursement.Fee.Value().StringFixed(2),
		Reference:   disbursement.Reference.Value(),
		StartDate:   disbursement.StartDate.Format(time.RFC3339),
		EndDate:     disbursement.EndDate.Format(time.RFC3339),
		CreatedAt:   disbursement.CreatedAt.Format(time.RFC3339),
	}
}
