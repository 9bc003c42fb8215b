package domain

import "github.com/shopspring/decimal"

type feeTier struct {
	upperBound decimal.Decimal
	rate       decimal.Decimal
}

// Ordered by upper bound; totals at a boundary use that tier's own rate.
var feeTiers = []feeTier{
	{upperBound: decimal.NewFromInt(50), rate: decimal.NewFromFloat(0.01)},
	{upperBound: decimal.NewFromInt(300), rate: decimal.NewFromFloat(0.0095)},
}

var feeRateAboveTiers = decimal.NewFromFloat(0.0085)

// Fee is the service charge withheld from a disbursed total.
type Fee struct {
	value decimal.Decimal
}

// NewFee derives the fee from an already validated total using the tier
// table, rounded to 2 decimal places.
func NewFee(total Amount) Fee {
	return Fee{value: total.Value().Mul(rateFor(total.Value())).Round(2)}
}

func NewFeeFromTotal(total decimal.Decimal) (Fee, error) {
	if total.IsZero() {
		return Fee{}, NewValidationError("Total amount is required")
	}
	if total.IsNegative() {
		return Fee{}, NewValidationError("Fee cannot be negative")
	}

	return Fee{value: total.Mul(rateFor(total)).Round(2)}, nil
}

// NewFeeFromValue validates an externally supplied fee against the total
// instead of recomputing it. Used when rebuilding stored disbursements.
func NewFeeFromValue(value decimal.Decimal, total Amount) (Fee, error) {
	if value.IsNegative() {
		return Fee{}, NewValidationError("Fee cannot be negative")
	}
	if value.GreaterThan(total.Value()) {
		return Fee{}, NewValidationError("Fee cannot be greater than total amount")
	}

	return Fee{value: value}, nil
}

func rateFor(total decimal.Decimal) decimal.Decimal {
	for _, tier := range feeTiers {
		if total.LessThanOrEqual(tier.upperBound) {
			return tier.rate
		}
	}

	return feeRateAboveTiers
}

func (f Fee) Value() decimal.Decimal {
	return f.value
}
