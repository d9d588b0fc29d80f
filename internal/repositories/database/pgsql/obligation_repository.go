package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxObligationRepository struct {
	BaseRepository
}

// newPgxObligationRepository creates a new repository for obligation data.
func newPgxObligationRepository(pool *pgxpool.Pool) portsrepo.ObligationRepositoryFacade {
	return &PgxObligationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxObligationRepository implements portsrepo.ObligationRepositoryFacade
var _ portsrepo.ObligationRepositoryFacade = (*PgxObligationRepository)(nil)

const obligationSelectQuery = `
SELECT
	obligation_id, owner_id, name, kind, category_id, include_in_plan, status,
	frequency, monthly_amount, start_date, contribution_count,
	installment_amount, installment_count, installment_day,
	target_amount, progress_amount, target_date,
	created_at, created_by, last_updated_at, last_updated_by
FROM obligations
`

func (r *PgxObligationRepository) getObligations(ctx context.Context, filterQuery string, args ...any) ([]domain.Obligation, error) {
	rows, err := r.Pool.Query(ctx, obligationSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query obligations", err)
	}
	defer rows.Close()

	modelObligations, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Obligation])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect obligation rows", err)
	}
	obligations, err := mapping.ToDomainObligationSlice(modelObligations)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map obligation rows", err)
	}
	return obligations, nil
}

// FindObligation retrieves one obligation of the given kind.
func (r *PgxObligationRepository) FindObligation(ctx context.Context, kind domain.ObligationKind, obligationID string) (*domain.Obligation, error) {
	obligations, err := r.getObligations(ctx, "WHERE obligation_id = $1 AND kind = $2;", obligationID, string(kind))
	if err != nil {
		return nil, err
	}
	if len(obligations) == 0 {
		return nil, apperrors.NewNotFoundError(string(kind) + " " + obligationID + " not found")
	}
	return &obligations[0], nil
}

// ListPlannedObligations lists an owner's obligations flagged for the plan, plus
// excluded ones that still own auto-generated budgets so a regeneration can prune them.
func (r *PgxObligationRepository) ListPlannedObligations(ctx context.Context, ownerID string, kind *domain.ObligationKind) ([]domain.Obligation, error) {
	var kindFilter *string
	if kind != nil {
		k := string(*kind)
		kindFilter = &k
	}
	return r.getObligations(ctx, `
		WHERE owner_id = $1 AND ($2::text IS NULL OR kind = $2)
		AND (include_in_plan OR EXISTS (
			SELECT 1 FROM budgets b
			WHERE b.owner_id = obligations.owner_id AND b.source_type = obligations.kind
			AND b.source_id = obligations.obligation_id AND b.is_auto_generated))
		ORDER BY kind, obligation_id;`, ownerID, kindFilter)
}

// UpdateGoalMonthlyContribution persists a recalculated monthly amount onto a goal.
func (r *PgxObligationRepository) UpdateGoalMonthlyContribution(ctx context.Context, goalID string, monthlyAmount int64, userID string, now time.Time) error {
	query := `
		UPDATE obligations
		SET monthly_amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE obligation_id = $1 AND kind = 'goal';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, goalID, monthlyAmount, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update goal "+goalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("goal " + goalID + " not found")
	}
	return nil
}
