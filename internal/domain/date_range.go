package domain

import "time"

// DateRange is a settlement window. Bounds are inclusive when matching
// order creation times.
type DateRange struct {
	StartDate time.Time
	EndDate   time.Time
}

func NewDateRange(startDate, endDate time.Time) (DateRange, error) {
	if endDate.Before(startDate) {
		return DateRange{}, NewDomainRuleError("End date must be after start date")
	}

	return DateRange{StartDate: startDate, EndDate: endDate}, nil
}
