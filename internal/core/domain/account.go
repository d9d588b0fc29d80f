package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a balance-holding account that may earn a monthly yield.
type Account struct {
	ID               string          `json:"id"`
	OwnerID          string          `json:"ownerID"`
	Name             string          `json:"name"`
	Balance          int64           `json:"balance"`          // minor units, valid as of the load time
	MonthlyYieldRate decimal.Decimal `json:"monthlyYieldRate"` // percent, e.g. 0.5 for 0.5% a month
	AuditFields
}

// EarnsYield reports whether the account has a positive monthly rate.
func (a Account) EarnsYield() bool {
	return a.MonthlyYieldRate.IsPositive()
}

// LedgerEntry is one posted movement on an account. Positive amounts increase the balance.
type LedgerEntry struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

// DailyBalance is the balance at the start of a calendar day.
type DailyBalance struct {
	Date    time.Time `json:"date"`
	Balance int64     `json:"balance"`
}

// AccountYield is the interest one account earned over a window.
type AccountYield struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Yield       int64  `json:"yield"`
}

// YieldBreakdown is stored as the metadata of the yield budget record.
type YieldBreakdown struct {
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Total       int64          `json:"total"`
	Accounts    []AccountYield `json:"accounts"`
}
