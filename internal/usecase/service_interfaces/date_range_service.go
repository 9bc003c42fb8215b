package service_interfaces

import (
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

type DateRangeService interface {
	Execute(current time.Time) domain.DateRange
}

type RangeStrategy interface {
	Execute(frequency domain.DisbursementFrequency, current time.Time) (domain.DateRange, error)
}
