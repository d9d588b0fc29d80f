package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomPlanRepository struct {
	BaseRepository
}

// newPgxCustomPlanRepository creates a new repository for custom plan entries.
func newPgxCustomPlanRepository(pool *pgxpool.Pool) portsrepo.CustomPlanRepositoryFacade {
	return &PgxCustomPlanRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCustomPlanRepository implements portsrepo.CustomPlanRepositoryFacade
var _ portsrepo.CustomPlanRepositoryFacade = (*PgxCustomPlanRepository)(nil)

// FindCustomPlanEntries retrieves an obligation's entries, optionally limited to a window.
func (r *PgxCustomPlanRepository) FindCustomPlanEntries(ctx context.Context, obligationID string, window *domain.MonthWindow) ([]domain.CustomPlanEntry, error) {
	query := `
		SELECT entry_id, owner_id, obligation_id, category_id, year, month, amount, description,
			created_at, created_by, last_updated_at, last_updated_by
		FROM custom_plan_entries
		WHERE obligation_id = $1
	`
	args := []any{obligationID}
	if window != nil {
		// months are compared as a running index so windows can span years
		query += " AND (year * 12 + month - 1) BETWEEN $2 AND $3"
		args = append(args, monthIndex(window.Start), monthIndex(window.End))
	}
	query += " ORDER BY year, month;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query custom plan entries", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CustomPlanEntry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect custom plan rows", err)
	}
	return mapping.ToDomainCustomPlanSlice(modelEntries), nil
}

// ReplaceCustomPlanEntries atomically deletes every entry of the obligation and inserts entries.
func (r *PgxCustomPlanRepository) ReplaceCustomPlanEntries(ctx context.Context, obligationID string, entries []domain.CustomPlanEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, "DELETE FROM custom_plan_entries WHERE obligation_id = $1;", obligationID); err != nil {
		return apperrors.NewAppError(500, "failed to clear custom plan of "+obligationID, err)
	}

	if len(entries) > 0 {
		query := `
			INSERT INTO custom_plan_entries (
				entry_id, owner_id, obligation_id, category_id, year, month, amount, description,
				created_at, created_by, last_updated_at, last_updated_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`
		batch := &pgx.Batch{}
		for _, e := range entries {
			m := mapping.ToModelCustomPlanEntry(e)
			batch.Queue(query,
				m.EntryID, m.OwnerID, m.ObligationID, m.CategoryID, m.Year, m.Month, m.Amount, m.Description,
				m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return writeError(fmt.Sprintf("failed to insert %d custom plan entries", len(entries)), err)
		}
	}
	return r.Commit(ctx, tx)
}

func monthIndex(m domain.YearMonth) int {
	return m.Year*12 + int(m.Month) - 1
}
