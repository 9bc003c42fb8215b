package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/http/controller"
	"github.com/api-sage/disbursement-processor/internal/adapter/http/middleware"
	"github.com/api-sage/disbursement-processor/internal/adapter/http/router"
	"github.com/api-sage/disbursement-processor/internal/adapter/repository/postgres"
	"github.com/api-sage/disbursement-processor/internal/config"
	"github.com/api-sage/disbursement-processor/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	merchantRepo := postgres.NewMerchantRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	disbursementRepo := postgres.NewDisbursementRepository(db)

	rangeStrategy := services.NewFrequencyRangeStrategy(
		services.NewDailyRangeService(cfg.DailyCutoffHour),
		services.NewWeeklyRangeService(),
	)

	merchantService := services.NewMerchantService(merchantRepo)
	orderService := services.NewOrderService(orderRepo, merchantRepo)
	disbursementService := services.NewDisbursementService(merchantRepo, orderRepo, disbursementRepo, rangeStrategy)

	mux := router.New(
		controller.NewMerchantController(merchantService),
		controller.NewOrderController(orderService),
		controller.NewDisbursementController(disbursementService),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKeyHash),
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("disbursement processor listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("serve http: %v", err)
	}
}
