package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/SscSPs/money_planner/internal/utils/pagination"
)

type BudgetRepository struct {
	db *sql.DB
}

var _ portsrepo.BudgetRepositoryFacade = (*BudgetRepository)(nil)

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
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const budgetUpsertQuery = budgetInsertQuery + `
ON CONFLICT (owner_id, category_id, year, month) DO UPDATE SET
	planned_amount    = excluded.planned_amount,
	actual_amount     = excluded.actual_amount,
	source_type       = excluded.source_type,
	source_id         = excluded.source_id,
	is_auto_generated = excluded.is_auto_generated,
	is_projected      = excluded.is_projected,
	description       = excluded.description,
	metadata          = excluded.metadata,
	last_updated_at   = excluded.last_updated_at,
	last_updated_by   = excluded.last_updated_by
`

func budgetArgs(m models.Budget) []any {
	var metadata any
	if len(m.Metadata) > 0 {
		metadata = string(m.Metadata)
	}
	return append([]any{
		m.BudgetID, m.OwnerID, m.CategoryID, m.Year, m.Month, m.PlannedAmount, ptrArg(m.ActualAmount),
		m.SourceType, ptrArg(m.SourceID), boolInt(m.IsAutoGenerated), boolInt(m.IsProjected), m.Description, metadata,
	}, auditArgs(m.AuditFields)...)
}

func scanBudget(row rowScanner) (models.Budget, error) {
	var (
		m                  models.Budget
		actual             sql.NullInt64
		sourceID, metadata sql.NullString
		audit              auditColumns
	)
	dest := append([]any{
		&m.BudgetID, &m.OwnerID, &m.CategoryID, &m.Year, &m.Month, &m.PlannedAmount, &actual,
		&m.SourceType, &sourceID, &m.IsAutoGenerated, &m.IsProjected, &m.Description, &metadata,
	}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return models.Budget{}, err
	}

	var err error
	if m.AuditFields, err = audit.model(); err != nil {
		return models.Budget{}, err
	}
	m.ActualAmount = nullInt64(actual)
	m.SourceID = nullString(sourceID)
	if metadata.Valid && metadata.String != "" {
		m.Metadata = []byte(metadata.String)
	}
	return m, nil
}

func (r *BudgetRepository) getBudgets(ctx context.Context, filterQuery string, args ...any) ([]domain.BudgetRecord, error) {
	rows, err := r.db.QueryContext(ctx, budgetSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query budgets", err)
	}
	defer func() { _ = rows.Close() }()

	var modelBudgets []models.Budget
	for rows.Next() {
		m, err := scanBudget(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan budget row", err)
		}
		modelBudgets = append(modelBudgets, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate budget rows", err)
	}
	return mapping.ToDomainBudgetSlice(modelBudgets), nil
}

// FindBudgetsByCategory retrieves every record of a category in the given years.
func (r *BudgetRepository) FindBudgetsByCategory(ctx context.Context, ownerID, categoryID string, years []int) ([]domain.BudgetRecord, error) {
	if len(years) == 0 {
		return nil, nil
	}
	args := append([]any{ownerID, categoryID}, intArgs(years)...)
	return r.getBudgets(ctx, "WHERE owner_id = ? AND category_id = ? AND year IN "+inClause(len(years))+" ORDER BY year, month", args...)
}

// FindBudgetsBySource retrieves the records one source owns in a category.
func (r *BudgetRepository) FindBudgetsBySource(ctx context.Context, key domain.BudgetSourceKey, years []int) ([]domain.BudgetRecord, error) {
	if len(years) == 0 {
		return nil, nil
	}
	args := append([]any{key.OwnerID, key.CategoryID, string(key.SourceType), key.SourceID}, intArgs(years)...)
	return r.getBudgets(ctx, `
		WHERE owner_id = ? AND category_id = ? AND source_type = ? AND source_id = ? AND year IN `+inClause(len(years))+`
		ORDER BY year, month`, args...)
}

// FindBudget retrieves the record at (owner, category, month).
func (r *BudgetRepository) FindBudget(ctx context.Context, ownerID, categoryID string, month domain.YearMonth) (*domain.BudgetRecord, error) {
	budgets, err := r.getBudgets(ctx, "WHERE owner_id = ? AND category_id = ? AND year = ? AND month = ?",
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
func (r *BudgetRepository) ListBudgetsBySource(ctx context.Context, ownerID string, sourceType domain.SourceType, sourceID string, limit int, nextToken *string) ([]domain.BudgetRecord, *string, error) {
	args := []any{ownerID, string(sourceType), sourceID}
	filter := "WHERE owner_id = ? AND source_type = ? AND source_id = ?"

	if nextToken != nil && *nextToken != "" {
		month, categoryID, err := pagination.DecodeMonthToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		filter += " AND (year, month, category_id) > (?, ?, ?)"
		args = append(args, month.Year, int(month.Month), categoryID)
	}
	filter += " ORDER BY year, month, category_id LIMIT ?"
	args = append(args, limit+1)

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
func (r *BudgetRepository) UpsertBudgets(ctx context.Context, records []domain.BudgetRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, budgetUpsertQuery)
	if err != nil {
		return apperrors.NewAppError(500, "failed to prepare budget upsert", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, budgetArgs(mapping.ToModelBudget(rec))...); err != nil {
			return writeError(fmt.Sprintf("failed to upsert budget for %s", rec.YearMonth()), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// InsertBudgetIfAbsent inserts record unless its key is taken.
func (r *BudgetRepository) InsertBudgetIfAbsent(ctx context.Context, record domain.BudgetRecord) (bool, error) {
	res, err := r.db.ExecContext(ctx, budgetInsertQuery+" ON CONFLICT (owner_id, category_id, year, month) DO NOTHING",
		budgetArgs(mapping.ToModelBudget(record))...)
	if err != nil {
		return false, writeError("failed to insert budget "+record.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.NewAppError(500, "failed to read rows affected", err)
	}
	return n == 1, nil
}

// DeleteAutoGeneratedBudgets removes the auto-generated records of a source in a category.
func (r *BudgetRepository) DeleteAutoGeneratedBudgets(ctx context.Context, key domain.BudgetSourceKey) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM budgets
		WHERE owner_id = ? AND category_id = ? AND source_type = ? AND source_id = ? AND is_auto_generated = 1`,
		key.OwnerID, key.CategoryID, string(key.SourceType), key.SourceID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete auto-generated budgets", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// DeleteBudgetsByIDs removes specific records of an owner.
func (r *BudgetRepository) DeleteBudgetsByIDs(ctx context.Context, ownerID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, 0, len(ids)+1)
	args = append(args, ownerID)
	for _, id := range ids {
		args = append(args, id)
	}
	if _, err := r.db.ExecContext(ctx, "DELETE FROM budgets WHERE owner_id = ? AND budget_id IN "+inClause(len(ids)), args...); err != nil {
		return apperrors.NewAppError(500, "failed to delete budgets", err)
	}
	return nil
}

// UpdateBudgetActual stores the actual amount observed for a record.
func (r *BudgetRepository) UpdateBudgetActual(ctx context.Context, id string, actual int64, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE budgets
		SET actual_amount = ?, last_updated_at = ?, last_updated_by = ?
		WHERE budget_id = ?`,
		actual, formatTime(time.Now()), userID, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update budget "+id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.NewNotFoundError("budget " + id + " not found")
	}
	return nil
}
