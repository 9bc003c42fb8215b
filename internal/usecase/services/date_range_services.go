package services

import (
	"fmt"
	"time"

	"github.com/api-sage/disbursement-processor/internal/domain"
)

// DailyRangeService maps an instant to the 24-hour settlement window ending
// at the daily cutoff hour of that instant's calendar day. Any time of day
// resolves to the same window.
type DailyRangeService struct {
	cutoffHour int
}

func NewDailyRangeService(cutoffHour int) *DailyRangeService {
	return &DailyRangeService{cutoffHour: cutoffHour}
}

func (s *DailyRangeService) Execute(current time.Time) domain.DateRange {
	endDate := time.Date(current.Year(), current.Month(), current.Day(), s.cutoffHour, 0, 0, 0, current.Location())

	return domain.DateRange{
		StartDate: endDate.AddDate(0, 0, -1),
		EndDate:   endDate,
	}
}

// WeeklyRangeService maps an instant to the most recently completed
// Sunday-to-Saturday week. An instant falling on a Sunday still resolves to
// the previous completed week.
type WeeklyRangeService struct{}

func NewWeeklyRangeService() *WeeklyRangeService {
	return &WeeklyRangeService{}
}

func (s *WeeklyRangeService) Execute(current time.Time) domain.DateRange {
	daysSinceSunday := int(current.Weekday())

	lastSunday := current.AddDate(0, 0, -daysSinceSunday)
	endDate := time.Date(lastSunday.Year(), lastSunday.Month(), lastSunday.Day(), 0, 0, 0, 0, current.Location())
	if daysSinceSunday == 0 {
		endDate = endDate.AddDate(0, 0, -7)
	}

	return domain.DateRange{
		StartDate: endDate.AddDate(0, 0, -6),
		EndDate:   endDate,
	}
}

// FrequencyRangeStrategy dispatches window computation to the calculator
// matching the merchant's disbursement frequency.
type FrequencyRangeStrategy struct {
	daily  *DailyRangeService
	weekly *WeeklyRangeService
}

func NewFrequencyRangeStrategy(daily *DailyRangeService, weekly *WeeklyRangeService) *FrequencyRangeStrategy {
	return &FrequencyRangeStrategy{daily: daily, weekly: weekly}
}

func (s *FrequencyRangeStrategy) Execute(frequency domain.DisbursementFrequency, current time.Time) (domain.DateRange, error) {
	switch frequency {
	case domain.DisbursementFrequencyDaily:
		return s.daily.Execute(current), nil
	case domain.DisbursementFrequencyWeekly:
		return s.weekly.Execute(current), nil
	default:
		return domain.DateRange{}, domain.NewDomainRuleError(fmt.Sprintf("Unsupported disbursement frequency: %s", frequency))
	}
}
