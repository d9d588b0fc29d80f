package yield_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/yield"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyRate_CompoundsToMonthlyRate(t *testing.T) {
	rate := yield.DailyRate(decimal.RequireFromString("0.5"))

	compounded := decimal.NewFromInt(1)
	for i := 0; i < 30; i++ {
		compounded = compounded.Mul(decimal.NewFromInt(1).Add(rate))
	}
	monthly, _ := compounded.Sub(decimal.NewFromInt(1)).Float64()
	assert.InDelta(t, 0.005, monthly, 1e-9)
}

func TestDailyRate_Zero(t *testing.T) {
	assert.True(t, yield.DailyRate(decimal.Zero).IsZero())
}

func TestDayYield(t *testing.T) {
	rate := yield.DailyRate(decimal.RequireFromString("0.5"))

	assert.Equal(t, int64(0), yield.DayYield(0, rate))
	assert.Equal(t, int64(0), yield.DayYield(-100000, rate))
	assert.Equal(t, int64(166), yield.DayYield(1000000, rate))
}

func TestSeriesYield(t *testing.T) {
	series := make([]domain.DailyBalance, 30)
	for i := range series {
		series[i] = domain.DailyBalance{Date: time.Date(2024, time.April, i+1, 0, 0, 0, 0, time.UTC), Balance: 1000000}
	}
	series[3].Balance = -5000
	series[4].Balance = 0

	assert.Equal(t, int64(28*166), yield.SeriesYield(series, decimal.RequireFromString("0.5")))
}

func TestCalculate(t *testing.T) {
	flat := func(balance int64) []domain.DailyBalance {
		s := make([]domain.DailyBalance, 30)
		for i := range s {
			s[i].Balance = balance
		}
		return s
	}

	results, total := yield.Calculate([]yield.AccountSeries{
		{Account: domain.Account{ID: "a", Name: "Savings", MonthlyYieldRate: decimal.RequireFromString("0.5")}, Series: flat(1000000)},
		{Account: domain.Account{ID: "b", Name: "Overdrawn", MonthlyYieldRate: decimal.RequireFromString("0.5")}, Series: flat(-1000000)},
		{Account: domain.Account{ID: "c", Name: "Tiny", MonthlyYieldRate: decimal.RequireFromString("0.5")}, Series: flat(10)},
		{Account: domain.Account{ID: "d", Name: "Brokerage", MonthlyYieldRate: decimal.RequireFromString("1")}, Series: flat(2000000)},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "d", results[0].AccountID)
	assert.Equal(t, "a", results[1].AccountID)
	assert.Equal(t, int64(4980), results[1].Yield)
	assert.Equal(t, results[0].Yield+results[1].Yield, total)
}
