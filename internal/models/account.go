package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a yield-bearing account row.
type Account struct {
	AccountID        string          `db:"account_id"`
	OwnerID          string          `db:"owner_id"`
	Name             string          `db:"name"`
	Balance          int64           `db:"balance"` // minor units, valid as of today
	MonthlyYieldRate decimal.Decimal `db:"monthly_yield_rate"`
	AuditFields
}

// LedgerEntry is one posted movement of an account.
type LedgerEntry struct {
	EntryID   string    `db:"entry_id"`
	AccountID string    `db:"account_id"`
	EntryDate time.Time `db:"entry_date"`
	Amount    int64     `db:"amount"` // signed, minor units
}
