package mapping

import (
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:               m.AccountID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		Balance:          m.Balance,
		MonthlyYieldRate: m.MonthlyYieldRate,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainLedgerEntries drops row identity and keeps the dated movements.
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = domain.LedgerEntry{Date: domain.DateOnly(m.EntryDate), Amount: m.Amount}
	}
	return ds
}
