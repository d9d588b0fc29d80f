package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type AccountRepository struct {
	db *sql.DB
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

const accountSelectQuery = `
SELECT account_id, owner_id, name, balance, monthly_yield_rate,
	created_at, created_by, last_updated_at, last_updated_by
FROM accounts
`

func (r *AccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, accountSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounts", err)
	}
	defer func() { _ = rows.Close() }()

	var modelAccounts []models.Account
	for rows.Next() {
		var (
			m     models.Account
			rate  string
			audit auditColumns
		)
		dest := append([]any{&m.AccountID, &m.OwnerID, &m.Name, &m.Balance, &rate}, audit.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan account row", err)
		}
		if m.MonthlyYieldRate, err = decimal.NewFromString(rate); err != nil {
			return nil, apperrors.NewAppError(500, "invalid yield rate on account "+m.AccountID, err)
		}
		if m.AuditFields, err = audit.model(); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode account audit", err)
		}
		modelAccounts = append(modelAccounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate account rows", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accounts, err := r.getAccounts(ctx, "WHERE account_id = ?", accountID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
	}
	return &accounts[0], nil
}

// ListYieldAccounts lists an owner's accounts with a positive monthly yield rate.
func (r *AccountRepository) ListYieldAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	return r.getAccounts(ctx, "WHERE owner_id = ? AND CAST(monthly_yield_rate AS REAL) > 0 ORDER BY name, account_id", ownerID)
}

// FindLedgerEntries lists the posted movements of an account with from <= date <= to.
func (r *AccountRepository) FindLedgerEntries(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT entry_id, account_id, entry_date, amount
		FROM ledger_entries
		WHERE account_id = ? AND entry_date BETWEEN ? AND ?
		ORDER BY entry_date, entry_id`,
		accountID, formatDate(from), formatDate(to))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger of "+accountID, err)
	}
	defer func() { _ = rows.Close() }()

	var modelEntries []models.LedgerEntry
	for rows.Next() {
		var (
			m    models.LedgerEntry
			date string
		)
		if err := rows.Scan(&m.EntryID, &m.AccountID, &date, &m.Amount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger row", err)
		}
		if m.EntryDate, err = time.Parse(dateLayout, date); err != nil {
			return nil, apperrors.NewAppError(500, "invalid ledger date "+date, err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate ledger rows", err)
	}
	return mapping.ToDomainLedgerEntries(modelEntries), nil
}
