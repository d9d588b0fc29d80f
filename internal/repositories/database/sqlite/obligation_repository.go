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
)

type ObligationRepository struct {
	db *sql.DB
}

var _ portsrepo.ObligationRepositoryFacade = (*ObligationRepository)(nil)

const obligationSelectQuery = `
SELECT
	obligation_id, owner_id, name, kind, category_id, include_in_plan, status,
	frequency, monthly_amount, start_date, contribution_count,
	installment_amount, installment_count, installment_day,
	target_amount, progress_amount, target_date,
	created_at, created_by, last_updated_at, last_updated_by
FROM obligations
`

func scanObligation(row rowScanner) (models.Obligation, error) {
	var (
		m                                     models.Obligation
		categoryID, startDate, targetDate     sql.NullString
		monthly, instAmount, target           sql.NullInt64
		contributionCount, instCount, instDay sql.NullInt64
		audit                                 auditColumns
	)
	dest := append([]any{
		&m.ObligationID, &m.OwnerID, &m.Name, &m.Kind, &categoryID, &m.IncludeInPlan, &m.Status,
		&m.Frequency, &monthly, &startDate, &contributionCount,
		&instAmount, &instCount, &instDay,
		&target, &m.ProgressAmount, &targetDate,
	}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return models.Obligation{}, err
	}

	var err error
	if m.StartDate, err = parseNullDate(startDate); err != nil {
		return models.Obligation{}, err
	}
	if m.TargetDate, err = parseNullDate(targetDate); err != nil {
		return models.Obligation{}, err
	}
	if m.AuditFields, err = audit.model(); err != nil {
		return models.Obligation{}, err
	}
	m.CategoryID = nullString(categoryID)
	m.MonthlyAmount = nullInt64(monthly)
	m.ContributionCount = nullInt(contributionCount)
	m.InstallmentAmount = nullInt64(instAmount)
	m.InstallmentCount = nullInt(instCount)
	m.InstallmentDay = nullInt(instDay)
	m.TargetAmount = nullInt64(target)
	return m, nil
}

func (r *ObligationRepository) getObligations(ctx context.Context, filterQuery string, args ...any) ([]domain.Obligation, error) {
	rows, err := r.db.QueryContext(ctx, obligationSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query obligations", err)
	}
	defer func() { _ = rows.Close() }()

	var modelObligations []models.Obligation
	for rows.Next() {
		m, err := scanObligation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan obligation row", err)
		}
		modelObligations = append(modelObligations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate obligation rows", err)
	}

	obligations, err := mapping.ToDomainObligationSlice(modelObligations)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map obligation rows", err)
	}
	return obligations, nil
}

// FindObligation retrieves one obligation of the given kind.
func (r *ObligationRepository) FindObligation(ctx context.Context, kind domain.ObligationKind, obligationID string) (*domain.Obligation, error) {
	obligations, err := r.getObligations(ctx, "WHERE obligation_id = ? AND kind = ?", obligationID, string(kind))
	if err != nil {
		return nil, err
	}
	if len(obligations) == 0 {
		return nil, apperrors.NewNotFoundError(string(kind) + " " + obligationID + " not found")
	}
	return &obligations[0], nil
}

// plannedFilter keeps obligations flagged for the plan and excluded ones that
// still own auto-generated budgets.
const plannedFilter = `(include_in_plan = 1 OR EXISTS (
	SELECT 1 FROM budgets b
	WHERE b.owner_id = obligations.owner_id AND b.source_type = obligations.kind
	AND b.source_id = obligations.obligation_id AND b.is_auto_generated = 1))`

// ListPlannedObligations lists an owner's obligations flagged for the plan, plus
// excluded ones that still own auto-generated budgets so a regeneration can prune them.
func (r *ObligationRepository) ListPlannedObligations(ctx context.Context, ownerID string, kind *domain.ObligationKind) ([]domain.Obligation, error) {
	if kind != nil {
		return r.getObligations(ctx, "WHERE owner_id = ? AND kind = ? AND "+plannedFilter+" ORDER BY kind, obligation_id", ownerID, string(*kind))
	}
	return r.getObligations(ctx, "WHERE owner_id = ? AND "+plannedFilter+" ORDER BY kind, obligation_id", ownerID)
}

// UpdateGoalMonthlyContribution persists a recalculated monthly amount onto a goal.
func (r *ObligationRepository) UpdateGoalMonthlyContribution(ctx context.Context, goalID string, monthlyAmount int64, userID string, now time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE obligations
		SET monthly_amount = ?, last_updated_at = ?, last_updated_by = ?
		WHERE obligation_id = ? AND kind = 'goal'`,
		monthlyAmount, formatTime(now), userID, goalID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update goal "+goalID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.NewNotFoundError("goal " + goalID + " not found")
	}
	return nil
}
