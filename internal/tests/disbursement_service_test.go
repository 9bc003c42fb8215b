package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/repository/memory"
	"github.com/api-sage/disbursement-processor/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/api-sage/disbursement-processor/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newStrategy() *services.FrequencyRangeStrategy {
	return services.NewFrequencyRangeStrategy(
		services.NewDailyRangeService(20),
		services.NewWeeklyRangeService(),
	)
}

func seedMerchant(t *testing.T, repo *memory.MerchantRepository, frequency domain.DisbursementFrequency) domain.Merchant {
	t.Helper()

	merchant, err := domain.NewMerchant("shop-one", "owner@shop.test", time.Now().UTC(), frequency, decimal.Zero)
	if err != nil {
		t.Fatalf("build merchant: %v", err)
	}
	if _, err := repo.Create(context.Background(), merchant); err != nil {
		t.Fatalf("seed merchant: %v", err)
	}

	return merchant
}

func seedPendingOrder(t *testing.T, repo *memory.OrderRepository, merchantID string, amount int64, createdAt time.Time) domain.Order {
	t.Helper()

	order, err := domain.NewOrder(merchantID, decimal.NewFromInt(amount))
	if err != nil {
		t.Fatalf("build order: %v", err)
	}

	// Pin the creation time inside the window under test.
	order, err = domain.ReconstructOrder(order.ID, order.MerchantID, order.Amount.Value(), order.Status, createdAt, createdAt)
	if err != nil {
		t.Fatalf("pin order creation time: %v", err)
	}

	if _, err := repo.Create(context.Background(), order); err != nil {
		t.Fatalf("seed order: %v", err)
	}

	return order
}

func TestProcessByFrequencySettlesPendingOrders(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	disbursementRepo := memory.NewDisbursementRepository()

	svc := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, newStrategy())

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)

	window := services.NewDailyRangeService(20).Execute(time.Now())
	inWindow := window.EndDate.Add(-time.Hour)
	first := seedPendingOrder(t, orderRepo, merchant.ID, 100, inWindow)
	second := seedPendingOrder(t, orderRepo, merchant.ID, 200, inWindow)

	disbursements, _, err := svc.ProcessByFrequency(context.Background(), domain.DisbursementFrequencyDaily)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(disbursements) != 1 {
		t.Fatalf("expected 1 disbursement, got %d", len(disbursements))
	}

	disbursement := disbursements[0]
	if disbursement.MerchantID != merchant.ID {
		t.Fatalf("expected merchant %s, got %s", merchant.ID, disbursement.MerchantID)
	}
	if disbursement.TotalAmount.Value().String() != "300" {
		t.Fatalf("expected total 300, got %s", disbursement.TotalAmount.Value().String())
	}
	if disbursement.Fee.Value().StringFixed(2) != "2.85" {
		t.Fatalf("expected fee 2.85, got %s", disbursement.Fee.Value().StringFixed(2))
	}

	for _, seeded := range []domain.Order{first, second} {
		updated, err := orderRepo.GetByID(context.Background(), seeded.ID)
		if err != nil {
			t.Fatalf("fetch order %s: %v", seeded.ID, err)
		}
		if updated.Status != domain.OrderStatusDisbursed {
			t.Fatalf("expected order %s to be DISBURSED, got %s", seeded.ID, updated.Status)
		}
	}
}

func TestProcessByFrequencySkipsMerchantsWithoutPendingOrders(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	disbursementRepo := memory.NewDisbursementRepository()

	svc := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, newStrategy())

	seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)

	disbursements, _, err := svc.ProcessByFrequency(context.Background(), domain.DisbursementFrequencyDaily)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(disbursements) != 0 {
		t.Fatalf("expected no disbursements, got %d", len(disbursements))
	}

	stored, err := disbursementRepo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("list disbursements: %v", err)
	}
	if len(stored) != 0 {
		t.Fatalf("expected empty disbursement store, got %d records", len(stored))
	}
}

func TestProcessByFrequencySecondRunCreatesNothing(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	disbursementRepo := memory.NewDisbursementRepository()

	svc := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, newStrategy())

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)
	window := services.NewDailyRangeService(20).Execute(time.Now())
	seedPendingOrder(t, orderRepo, merchant.ID, 100, window.EndDate.Add(-time.Hour))

	firstRun, _, err := svc.ProcessByFrequency(context.Background(), domain.DisbursementFrequencyDaily)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if len(firstRun) != 1 {
		t.Fatalf("expected 1 disbursement on first run, got %d", len(firstRun))
	}

	secondRun, _, err := svc.ProcessByFrequency(context.Background(), domain.DisbursementFrequencyDaily)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if len(secondRun) != 0 {
		t.Fatalf("expected no disbursements on second run, got %d", len(secondRun))
	}
}

func TestProcessByFrequencyRejectsUnsupportedFrequency(t *testing.T) {
	merchantRepo := &untouchedMerchantRepo{t: t}
	orderRepo := &untouchedOrderRepo{t: t}
	disbursementRepo := &untouchedDisbursementRepo{t: t}

	svc := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, newStrategy())

	_, _, err := svc.ProcessByFrequency(context.Background(), domain.DisbursementFrequency("MONTHLY"))
	if err == nil {
		t.Fatal("expected error for unsupported frequency")
	}
	if err.Error() != "Unsupported disbursement frequency: MONTHLY" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestProcessMerchantWindowRejectsInvertedRange(t *testing.T) {
	merchantRepo := &untouchedMerchantRepo{t: t}
	orderRepo := &untouchedOrderRepo{t: t}
	disbursementRepo := &untouchedDisbursementRepo{t: t}

	svc := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, newStrategy())

	startDate := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ProcessMerchantWindow(context.Background(), "merchant-1", startDate, endDate)
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
	if err.Error() != "End date must be after start date" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestProcessMerchantWindowReturnsNilWithoutPendingOrders(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	disbursementRepo := memory.NewDisbursementRepository()

	svc := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, newStrategy())

	startDate := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	disbursement, err := svc.ProcessMerchantWindow(context.Background(), "merchant-1", startDate, endDate)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if disbursement != nil {
		t.Fatalf("expected nil disbursement, got %+v", disbursement)
	}
}

func TestProcessMerchantWindowSettlesExplicitWindow(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	disbursementRepo := memory.NewDisbursementRepository()

	svc := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, newStrategy())

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyWeekly)

	startDate := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	seedPendingOrder(t, orderRepo, merchant.ID, 40, startDate.Add(2*time.Hour))

	disbursement, err := svc.ProcessMerchantWindow(context.Background(), merchant.ID, startDate, endDate)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if disbursement == nil {
		t.Fatal("expected a disbursement")
	}
	if disbursement.Fee.Value().StringFixed(2) != "0.40" {
		t.Fatalf("expected fee 0.40, got %s", disbursement.Fee.Value().StringFixed(2))
	}
}

func TestOrderUpdateFailureDoesNotRollBackDisbursement(t *testing.T) {
	merchantRepo := memory.NewMerchantRepository()
	orderRepo := memory.NewOrderRepository()
	disbursementRepo := memory.NewDisbursementRepository()

	merchant := seedMerchant(t, merchantRepo, domain.DisbursementFrequencyDaily)
	window := services.NewDailyRangeService(20).Execute(time.Now())
	broken := seedPendingOrder(t, orderRepo, merchant.ID, 100, window.EndDate.Add(-time.Hour))

	failing := &failingUpdateOrderRepo{OrderRepository: orderRepo, failID: broken.ID}
	svc := services.NewDisbursementService(merchantRepo, failing, disbursementRepo, newStrategy())

	_, _, err := svc.ProcessByFrequency(context.Background(), domain.DisbursementFrequencyDaily)
	if err == nil {
		t.Fatal("expected error from failing order update")
	}

	stored, listErr := disbursementRepo.FindAll(context.Background())
	if listErr != nil {
		t.Fatalf("list disbursements: %v", listErr)
	}
	if len(stored) != 1 {
		t.Fatalf("expected created disbursement to remain, got %d records", len(stored))
	}
}

type untouchedMerchantRepo struct {
	repo_interfaces.MerchantRepository
	t *testing.T
}

func (r *untouchedMerchantRepo) FindByDisbursementFrequency(context.Context, domain.DisbursementFrequency) ([]domain.Merchant, error) {
	r.t.Fatal("unexpected merchant repository call")
	return nil, nil
}

type untouchedOrderRepo struct {
	repo_interfaces.OrderRepository
	t *testing.T
}

func (r *untouchedOrderRepo) FindByMerchantIDAndDateRangeAndStatus(context.Context, string, time.Time, time.Time, domain.OrderStatus) ([]domain.Order, error) {
	r.t.Fatal("unexpected order repository call")
	return nil, nil
}

type untouchedDisbursementRepo struct {
	repo_interfaces.DisbursementRepository
	t *testing.T
}

func (r *untouchedDisbursementRepo) Create(context.Context, domain.Disbursement) (domain.Disbursement, error) {
	r.t.Fatal("unexpected disbursement repository call")
	return domain.Disbursement{}, nil
}

type failingUpdateOrderRepo struct {
	repo_interfaces.OrderRepository
	failID string
}

func (r *failingUpdateOrderRepo) Update(ctx context.Context, order domain.Order) (domain.Order, error) {
	if order.ID == r.failID {
		return domain.Order{}, errors.New("connection reset by peer")
	}
	return r.OrderRepository.Update(ctx, order)
}
