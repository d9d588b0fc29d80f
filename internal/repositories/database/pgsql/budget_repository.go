package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/SscSPs/money_planner/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for budget records.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBudgetRepository implements portsrepo.BudgetRepositoryFacade
var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetSelectQuery = `
SELECT
	budget_id, owner_id, category_id, year, month, planned_amount, actual_amount,
	source_type, source_id, is_auto_generated, is_projected, description, metadata,
	created_at, created_by, last_updated_at, last_updated_by
FROM budgets
`

const budgetInsertQuery = `
INSERT INTO budgets (
	budget_id, owner_id, category_id, year, month, planned_amount, actual_amount,
	source_type, source_id, is_auto_generated, is_projected, description, metadata,
	created_at, created_by, last_updated_at, last_updated_by
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

// The conflicting row keeps its id and creation audit; everything else is replaced.
const budgetUpsertQuery = budgetInsertQuery + `
ON CONFLICT (owner_id, category_id, year, month) DO UPDATE SET
	planned_amount    = EXCLUDED.planned_amount,
	actual_amount     = EXCLUDED.actual_amount,
	source_type       = EXCLUDED.source_type,
	source_id         = EXCLUDED.source_id,
	is_auto_generated = EXCLUDED.is_auto_generated,
	is_projected      = EXCLUDED.is_projected,
	description       = EXCLUDED.description,
	metadata          = EXCLUDED.metadata,
	last_updated_at   = EXCLUDED.last_updated_at,
	last_updated_by   = EXCLUDED.last_updated_by;
`

func budgetArgs(m models.Budget) []any {
	return []any{
		m.BudgetID, m.OwnerID, m.CategoryID, m.Year, m.Month, m.PlannedAmount, m.ActualAmount,
		m.SourceType, m.SourceID, m.IsAutoGenerated, m.IsProjected, m.Description, m.Metadata,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func (r *PgxBudgetRepository) getBudgets(ctx context.Context, filterQuery string, args ...any) ([]domain.BudgetRecord, error) {
	rows, err := r.Pool.Query(ctx, budgetSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets", err)
	}
	defer rows.Close()

	modelBudgets, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Budget])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect budget rows", err)
	}
	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}

// FindBudgetsByCategory retrieves every record of a category in the given years.
func (r *PgxBudgetRepository) FindBudgetsByCategory(ctx context.Context, ownerID, categoryID string, years []int) ([]domain.BudgetRecord, error) {
	return r.getBudgets(ctx, `
		WHERE owner_id = $1 AND category_id = $2 AND year = ANY($3)
		ORDER BY year, month;`, ownerID, categoryID, years)
}

// FindBudgetsBySource retrieves the records one source owns in a category.
func (r *PgxBudgetRepository) FindBudgetsBySource(ctx context.Context, key domain.BudgetSourceKey, years []int) ([]domain.BudgetRecord, error) {
	return r.getBudgets(ctx, `
		WHERE owner_id = $1 AND category_id = $2 AND source_type = $3 AND source_id = $4 AND year = ANY($5)
		ORDER BY year, month;`, key.OwnerID, key.CategoryID, string(key.SourceType), key.SourceID, years)
}

// FindBudget retrieves the record at (owner, category, month).
func (r *PgxBudgetRepository) FindBudget(ctx context.Context, ownerID, categoryID string, month domain.YearMonth) (*domain.BudgetRecord, error) {
	budgets, err := r.getBudgets(ctx, "WHERE owner_id = $1 AND category_id = $2 AND year = $3 AND month = $4;",
		ownerID, categoryID, month.Year, int(month.Month))
	if err != nil {
		return nil, err
	}
	if len(budgets) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no budget for category %s in %s", categoryID, month))
	}
	return &budgets[0], nil
}

// ListBudgetsBySource lists a source's records oldest month first using keyset pagination.
func (r *PgxBudgetRepository) ListBudgetsBySource(ctx context.Context, ownerID string, sourceType domain.SourceType, sourceID string, limit int, nextToken *string) ([]domain.BudgetRecord, *string, error) {
	args := []any{ownerID, string(sourceType), sourceID}
	filter := "WHERE owner_id = $1 AND source_type = $2 AND source_id = $3"

	if nextToken != nil && *nextToken != "" {
		month, categoryID, err := pagination.DecodeMonthToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		filter += " AND (year, month, category_id) > ($4, $5, $6)"
		args = append(args, month.Year, int(month.Month), categoryID)
	}
	filter += fmt.Sprintf(" ORDER BY year, month, category_id LIMIT %d;", limit+1)

	budgets, err := r.getBudgets(ctx, filter, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(budgets) > limit {
		budgets = budgets[:limit]
		last := budgets[len(budgets)-1]
		token := pagination.EncodeMonthToken(last.YearMonth(), last.CategoryID)
		next = &token
	}
	return budgets, next, nil
}

// UpsertBudgets writes records in one transaction on the composite key.
func (r *PgxBudgetRepository) UpsertBudgets(ctx context.Context, records []domain.BudgetRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(budgetUpsertQuery, budgetArgs(mapping.ToModelBudget(rec))...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return writeError(fmt.Sprintf("failed to upsert %d budgets", len(records)), err)
	}
	return r.Commit(ctx, tx)
}

// InsertBudgetIfAbsent inserts record unless its key is taken.
func (r *PgxBudgetRepository) InsertBudgetIfAbsent(ctx context.Context, record domain.BudgetRecord) (bool, error) {
	query := budgetInsertQuery + " ON CONFLICT (owner_id, category_id, year, month) DO NOTHING;"
	cmdTag, err := r.Pool.Exec(ctx, query, budgetArgs(mapping.ToModelBudget(record))...)
	if err != nil {
		return false, writeError("failed to insert budget "+record.ID, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

// DeleteAutoGeneratedBudgets removes the auto-generated records of a source in a category.
func (r *PgxBudgetRepository) DeleteAutoGeneratedBudgets(ctx context.Context, key domain.BudgetSourceKey) (int, error) {
	query := `
		DELETE FROM budgets
		WHERE owner_id = $1 AND category_id = $2 AND source_type = $3 AND source_id = $4 AND is_auto_generated;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, key.OwnerID, key.CategoryID, string(key.SourceType), key.SourceID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete auto-generated budgets", err)
	}
	return int(cmdTag.RowsAffected()), nil
}

// DeleteBudgetsByIDs removes specific records of an owner.
func (r *PgxBudgetRepository) DeleteBudgetsByIDs(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.Pool.Exec(ctx, "DELETE FROM budgets WHERE owner_id = $1 AND budget_id = ANY($2);", ownerID, ids)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete budgets", err)
	}
	return nil
}

// UpdateBudgetActual stores the actual amount observed for a record.
func (r *PgxBudgetRepository) UpdateBudgetActual(ctx context.Context, id string, actual int64, userID string) error {
	query := `
		UPDATE budgets
		SET actual_amount = $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE budget_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, id, actual, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget "+id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("budget " + id + " not found")
	}
	return nil
}
