package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListYieldAccounts lists an owner's accounts with a positive monthly yield rate.
	ListYieldAccounts(ctx context.Context, ownerID string) ([]domain.Account, error)
}

// LedgerReader defines read operations on account transactions
type LedgerReader interface {
	// FindLedgerEntries lists the posted movements of an account with from <= date <= to.
	FindLedgerEntries(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerEntry, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	LedgerReader
}
