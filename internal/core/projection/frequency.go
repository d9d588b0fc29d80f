// Package projection turns obligations into per-month planned amounts.
//
// Everything here is pure: callers load the obligation, its custom plan entries
// and the reference date, and persist the resulting lines themselves.
package projection

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/shopspring/decimal"
)

// periodsPerMonth converts one period's amount into its monthly equivalent.
var periodsPerMonth = map[domain.Frequency]decimal.Decimal{
	domain.FrequencyDaily:     decimal.NewFromInt(30),
	domain.FrequencyWeekly:    decimal.NewFromInt(52).Div(decimal.NewFromInt(12)),
	domain.FrequencyBiweekly:  decimal.NewFromInt(26).Div(decimal.NewFromInt(12)),
	domain.FrequencyMonthly:   decimal.NewFromInt(1),
	domain.FrequencyQuarterly: decimal.NewFromInt(1).Div(decimal.NewFromInt(3)),
	domain.FrequencyYearly:    decimal.NewFromInt(1).Div(decimal.NewFromInt(12)),
}

// normalizeFrequency maps the empty frequency to monthly.
func normalizeFrequency(f domain.Frequency) domain.Frequency {
	if f == "" {
		return domain.FrequencyMonthly
	}
	return f
}

// ShouldIncludeInMonth reports whether a contribution lands in candidate given the anchor date.
// Sub-monthly frequencies land in every month; quarterly and yearly align to the anchor's month.
func ShouldIncludeInMonth(frequency domain.Frequency, anchor time.Time, candidate domain.YearMonth) bool {
	anchorMonth := domain.YearMonthOf(anchor)
	if candidate.Before(anchorMonth) {
		return false
	}

	switch normalizeFrequency(frequency) {
	case domain.FrequencyDaily, domain.FrequencyWeekly, domain.FrequencyBiweekly, domain.FrequencyMonthly:
		return true
	case domain.FrequencyQuarterly:
		return anchorMonth.MonthsUntil(candidate)%3 == 0
	case domain.FrequencyYearly:
		return candidate.Month == anchorMonth.Month
	default:
		return false
	}
}

// CalculateMonthlyTotal converts a per-period amount into the equivalent monthly amount,
// rounded half away from zero to the minor unit.
func CalculateMonthlyTotal(frequency domain.Frequency, periodAmount int64) int64 {
	factor, ok := periodsPerMonth[normalizeFrequency(frequency)]
	if !ok {
		return periodAmount
	}
	return decimal.NewFromInt(periodAmount).Mul(factor).Round(0).IntPart()
}
