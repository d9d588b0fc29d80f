package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/google/uuid"
)

// budgetReconciler implements the BudgetReconcilerSvc interface
type budgetReconciler struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	// allowCrossSource lets an overwriting run replace records owned by another source.
	allowCrossSource bool
}

// ReconcilerOption is a functional option for configuring the reconciler
type ReconcilerOption func(*budgetReconciler)

// WithCrossSourceOverwrite allows overwriting runs to take over keys held by other sources.
func WithCrossSourceOverwrite(allow bool) ReconcilerOption {
	return func(r *budgetReconciler) {
		r.allowCrossSource = allow
	}
}

// WithReconcilerClock overrides the clock used for audit timestamps.
func WithReconcilerClock(clock func() time.Time) ReconcilerOption {
	return func(r *budgetReconciler) {
		r.Clock = clock
	}
}

// NewBudgetReconciler creates a reconciler writing through repo.
func NewBudgetReconciler(repo portsrepo.BudgetRepositoryFacade, options ...ReconcilerOption) portssvc.BudgetReconcilerSvc {
	r := &budgetReconciler{budgetRepo: repo}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.BudgetReconcilerSvc = (*budgetReconciler)(nil)

// Reconcile decides per month whether to insert, overwrite, skip or delete.
//
// A key held by another source is never touched unless cross-source overwrite is
// enabled and overwrite is set. Without overwrite any existing record is kept.
// With overwrite, the source's auto-generated records inside window that received
// no line are deleted.
func (r *budgetReconciler) Reconcile(ctx context.Context, key domain.BudgetSourceKey, window domain.MonthWindow, lines []domain.ProjectionLine, overwrite bool) (domain.ReconcileResult, error) {
	var result domain.ReconcileResult

	existing, err := r.budgetRepo.FindBudgetsByCategory(ctx, key.OwnerID, key.CategoryID, touchedYears(window, lines))
	if err != nil {
		r.LogError(ctx, err, "Failed to load existing budgets",
			slog.String("category_id", key.CategoryID),
			slog.String("source_id", key.SourceID))
		return result, fmt.Errorf("failed to load existing budgets: %w", err)
	}

	byMonth := make(map[domain.YearMonth]domain.BudgetRecord, len(existing))
	for _, rec := range existing {
		byMonth[rec.YearMonth()] = rec
	}

	now := r.Now()
	sourceID := key.SourceID
	emitted := make(map[domain.YearMonth]bool, len(lines))
	upserts := make([]domain.BudgetRecord, 0, len(lines))

	for _, line := range lines {
		emitted[line.Month] = true
		current, found := byMonth[line.Month]

		if found && !current.OwnedBy(key.SourceType, key.SourceID) && !(overwrite && r.allowCrossSource) {
			r.LogWarn(ctx, "Budget key held by another source, skipping",
				slog.String("category_id", key.CategoryID),
				slog.String("month", line.Month.String()),
				slog.String("held_by_type", string(current.SourceType)),
				slog.String("held_by_id", current.Source()),
				slog.String("source_id", key.SourceID))
			result.Skipped++
			continue
		}
		if found && !overwrite {
			result.Skipped++
			continue
		}

		record := domain.BudgetRecord{
			ID:              uuid.NewString(),
			OwnerID:         key.OwnerID,
			CategoryID:      key.CategoryID,
			Year:            line.Month.Year,
			Month:           line.Month.Month,
			PlannedAmount:   line.Amount,
			SourceType:      key.SourceType,
			SourceID:        &sourceID,
			IsAutoGenerated: true,
			IsProjected:     line.Projected,
			Description:     line.Description,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     key.OwnerID,
				LastUpdatedAt: now,
				LastUpdatedBy: key.OwnerID,
			},
		}
		if found {
			record.ID = current.ID
			record.ActualAmount = current.ActualAmount
			record.CreatedAt = current.CreatedAt
			record.CreatedBy = current.CreatedBy
			result.Updated++
		} else {
			result.Created++
		}
		upserts = append(upserts, record)
	}

	var stale []string
	if overwrite {
		for _, rec := range existing {
			if !rec.IsAutoGenerated || !rec.OwnedBy(key.SourceType, key.SourceID) {
				continue
			}
			if window.Contains(rec.YearMonth()) && !emitted[rec.YearMonth()] {
				stale = append(stale, rec.ID)
			}
		}
	}

	if len(upserts) > 0 {
		if err := r.budgetRepo.UpsertBudgets(ctx, upserts); err != nil {
			r.LogError(ctx, err, "Failed to upsert budgets",
				slog.String("category_id", key.CategoryID),
				slog.String("source_id", key.SourceID),
				slog.Int("count", len(upserts)))
			return domain.ReconcileResult{}, fmt.Errorf("failed to upsert budgets: %w", err)
		}
	}
	if len(stale) > 0 {
		if err := r.budgetRepo.DeleteBudgetsByIDs(ctx, key.OwnerID, stale); err != nil {
			r.LogError(ctx, err, "Failed to delete stale budgets",
				slog.String("source_id", key.SourceID),
				slog.Int("count", len(stale)))
			return result, fmt.Errorf("failed to delete stale budgets: %w", err)
		}
		result.Deleted = len(stale)
	}

	r.LogDebug(ctx, "Budgets reconciled",
		slog.String("source_type", string(key.SourceType)),
		slog.String("source_id", key.SourceID),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("skipped", result.Skipped),
		slog.Int("deleted", result.Deleted))
	return result, nil
}

// Prune deletes the auto-generated records of a source in a category, leaving
// manual and other-source records untouched.
func (r *budgetReconciler) Prune(ctx context.Context, key domain.BudgetSourceKey) (int, error) {
	if key.CategoryID == "" {
		return 0, nil
	}
	n, err := r.budgetRepo.DeleteAutoGeneratedBudgets(ctx, key)
	if err != nil {
		r.LogError(ctx, err, "Failed to prune auto-generated budgets",
			slog.String("category_id", key.CategoryID),
			slog.String("source_id", key.SourceID))
		return 0, fmt.Errorf("failed to prune budgets: %w", err)
	}
	if n > 0 {
		r.LogInfo(ctx, "Pruned auto-generated budgets",
			slog.String("category_id", key.CategoryID),
			slog.String("source_id", key.SourceID),
			slog.Int("deleted", n))
	}
	return n, nil
}

// touchedYears returns the window years plus any year a stray line lands in.
func touchedYears(window domain.MonthWindow, lines []domain.ProjectionLine) []int {
	years := window.Years()
	seen := make(map[int]bool, len(years))
	for _, y := range years {
		seen[y] = true
	}
	for _, l := range lines {
		if !seen[l.Month.Year] {
			seen[l.Month.Year] = true
			years = append(years, l.Month.Year)
		}
	}
	return years
}
