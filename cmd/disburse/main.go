package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/api-sage/disbursement-processor/internal/adapter/repository/postgres"
	"github.com/api-sage/disbursement-processor/internal/config"
	"github.com/api-sage/disbursement-processor/internal/domain"
	"github.com/api-sage/disbursement-processor/internal/usecase/services"
)

// disburse runs one settlement cycle for every merchant enrolled at the
// given frequency. Meant to be invoked by cron on the matching cadence.
func main() {
	frequencyFlag := flag.String("frequency", "", "disbursement frequency (DAILY or WEEKLY)")
	timeoutFlag := flag.Duration("timeout", 5*time.Minute, "maximum run duration")
	flag.Parse()

	frequency := domain.DisbursementFrequency(strings.ToUpper(strings.TrimSpace(*frequencyFlag)))
	if frequency == "" {
		log.Fatal("frequency is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	rangeStrategy := services.NewFrequencyRangeStrategy(
		services.NewDailyRangeService(cfg.DailyCutoffHour),
		services.NewWeeklyRangeService(),
	)

	disbursementService := services.NewDisbursementService(
		postgres.NewMerchantRepository(db),
		postgres.NewOrderRepository(db),
		postgres.NewDisbursementRepository(db),
		rangeStrategy,
	)

	disbursements, window, err := disbursementService.ProcessByFrequency(ctx, frequency)
	if err != nil {
		log.Fatalf("process disbursements: %v (created %d before failure)", err, len(disbursements))
	}

	log.Printf(
		"processed %d disbursements for window %s .. %s",
		len(disbursements),
		window.StartDate.Format(time.RFC3339),
		window.EndDate.Format(time.RFC3339),
	)
}
