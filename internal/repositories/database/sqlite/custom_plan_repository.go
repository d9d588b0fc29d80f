package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
)

type CustomPlanRepository struct {
	db *sql.DB
}

var _ portsrepo.CustomPlanRepositoryFacade = (*CustomPlanRepository)(nil)

// FindCustomPlanEntries retrieves an obligation's entries, optionally limited to a window.
func (r *CustomPlanRepository) FindCustomPlanEntries(ctx context.Context, obligationID string, window *domain.MonthWindow) ([]domain.CustomPlanEntry, error) {
	query := `
		SELECT entry_id, owner_id, obligation_id, category_id, year, month, amount, description,
			created_at, created_by, last_updated_at, last_updated_by
		FROM custom_plan_entries
		WHERE obligation_id = ?`
	args := []any{obligationID}
	if window != nil {
		query += " AND (year * 12 + month - 1) BETWEEN ? AND ?"
		args = append(args, monthIndex(window.Start), monthIndex(window.End))
	}
	query += " ORDER BY year, month"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query custom plan entries", err)
	}
	defer func() { _ = rows.Close() }()

	var modelEntries []models.CustomPlanEntry
	for rows.Next() {
		var (
			m     models.CustomPlanEntry
			audit auditColumns
		)
		dest := append([]any{
			&m.EntryID, &m.OwnerID, &m.ObligationID, &m.CategoryID, &m.Year, &m.Month, &m.Amount, &m.Description,
		}, audit.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan custom plan row", err)
		}
		if m.AuditFields, err = audit.model(); err != nil {
			return nil, apperrors.NewAppError(500, "failed to decode custom plan audit", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate custom plan rows", err)
	}
	return mapping.ToDomainCustomPlanSlice(modelEntries), nil
}

// ReplaceCustomPlanEntries atomically deletes every entry of the obligation and inserts entries.
func (r *CustomPlanRepository) ReplaceCustomPlanEntries(ctx context.Context, obligationID string, entries []domain.CustomPlanEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM custom_plan_entries WHERE obligation_id = ?", obligationID); err != nil {
		return apperrors.NewAppError(500, "failed to clear custom plan of "+obligationID, err)
	}

	for _, e := range entries {
		m := mapping.ToModelCustomPlanEntry(e)
		args := append([]any{
			m.EntryID, m.OwnerID, m.ObligationID, m.CategoryID, m.Year, m.Month, m.Amount, m.Description,
		}, auditArgs(m.AuditFields)...)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO custom_plan_entries (
				entry_id, owner_id, obligation_id, category_id, year, month, amount, description,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, args...)
		if err != nil {
			return writeError(fmt.Sprintf("failed to insert custom plan entry for %s", e.Month), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

func monthIndex(m domain.YearMonth) int {
	return m.Year*12 + int(m.Month) - 1
}
