package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for accounts and their ledger.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountSelectQuery = `
SELECT account_id, owner_id, name, balance, monthly_yield_rate,
	created_at, created_by, last_updated_at, last_updated_by
FROM accounts
`

// FindAccountByID retrieves a specific account by its unique identifier.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelectQuery+"WHERE account_id = $1;", accountID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query account "+accountID, err)
	}
	defer rows.Close()

	modelAcc, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("account " + accountID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to scan account "+accountID, err)
	}
	acc := mapping.ToDomainAccount(modelAcc)
	return &acc, nil
}

// ListYieldAccounts lists an owner's accounts with a positive monthly yield rate.
func (r *PgxAccountRepository) ListYieldAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, accountSelectQuery+"WHERE owner_id = $1 AND monthly_yield_rate > 0 ORDER BY name, account_id;", ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query yield accounts", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect account rows", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// FindLedgerEntries lists the posted movements of an account with from <= date <= to.
func (r *PgxAccountRepository) FindLedgerEntries(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, account_id, entry_date, amount
		FROM ledger_entries
		WHERE account_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, domain.DateOnly(from), domain.DateOnly(to))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger of "+accountID, err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect ledger rows", err)
	}
	return mapping.ToDomainLedgerEntries(modelEntries), nil
}
