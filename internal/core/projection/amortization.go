package projection

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// MonthsBetween counts whole calendar months from start to target. The partial
// final month is credited only when the target day has not yet passed the start
// day. The result is never less than 1.
func MonthsBetween(start, target time.Time) int {
	months := (target.Year()-start.Year())*12 + int(target.Month()) - int(start.Month())
	if target.Day() < start.Day() {
		months--
	}
	if months < 1 {
		return 1
	}
	return months
}

// CalculateMonthlyContribution returns the level monthly amount that closes
// target - current by targetDate when contributions begin at startDate.
// ok is false when targetDate is not after startDate or nothing remains.
func CalculateMonthlyContribution(target, current int64, targetDate, startDate time.Time) (amount int64, ok bool) {
	start := domain.DateOnly(startDate)
	end := domain.DateOnly(targetDate)
	if !end.After(start) {
		return 0, false
	}

	remaining := target - current
	if remaining <= 0 {
		return 0, false
	}

	months := int64(MonthsBetween(start, end))
	return (remaining + months - 1) / months, true
}
