package yield

import (
	"math"
	"sort"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/shopspring/decimal"
)

// daysPerMonth is the compounding basis used to turn a monthly rate into a daily one.
const daysPerMonth = 30

var hundred = decimal.NewFromInt(100)

// DailyRate converts a monthly percentage into the geometric daily rate
// (1 + r/100)^(1/30) - 1, expressed as a fraction.
func DailyRate(monthlyRatePercent decimal.Decimal) decimal.Decimal {
	monthly, _ := monthlyRatePercent.Div(hundred).Float64()
	return decimal.NewFromFloat(math.Pow(1+monthly, 1.0/daysPerMonth) - 1)
}

// DayYield is the interest earned on one day's balance. Non-positive balances earn nothing.
func DayYield(balance int64, dailyRate decimal.Decimal) int64 {
	if balance <= 0 {
		return 0
	}
	return decimal.NewFromInt(balance).Mul(dailyRate).Round(0).IntPart()
}

// SeriesYield sums the daily yield over a balance series.
func SeriesYield(series []domain.DailyBalance, monthlyRatePercent decimal.Decimal) int64 {
	rate := DailyRate(monthlyRatePercent)
	var total int64
	for _, day := range series {
		total += DayYield(day.Balance, rate)
	}
	return total
}

// AccountSeries pairs an account with its reconstructed balances.
type AccountSeries struct {
	Account domain.Account
	Series  []domain.DailyBalance
}

// Calculate returns the per-account yields, largest first, and their total.
// Accounts whose yield is not positive are left out.
func Calculate(accounts []AccountSeries) ([]domain.AccountYield, int64) {
	var (
		results []domain.AccountYield
		total   int64
	)
	for _, a := range accounts {
		y := SeriesYield(a.Series, a.Account.MonthlyYieldRate)
		if y <= 0 {
			continue
		}
		results = append(results, domain.AccountYield{
			AccountID:   a.Account.ID,
			AccountName: a.Account.Name,
			Yield:       y,
		})
		total += y
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Yield > results[j].Yield })
	return results, total
}
