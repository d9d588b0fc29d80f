package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/projection"
)

// recalculationService implements the RecalculationSvc interface
type recalculationService struct {
	BaseService
	obligationRepo portsrepo.ObligationRepositoryFacade
	customPlanRepo portsrepo.CustomPlanReader
	budgetRepo     portsrepo.BudgetRepositoryFacade
	horizonMonths  int
}

// RecalculationOption is a functional option for configuring the recalculation service
type RecalculationOption func(*recalculationService)

// WithRecalculationHorizon sets how far ahead future records are searched.
func WithRecalculationHorizon(months int) RecalculationOption {
	return func(s *recalculationService) {
		if months > 0 {
			s.horizonMonths = months
		}
	}
}

// WithRecalculationClock overrides the clock.
func WithRecalculationClock(clock func() time.Time) RecalculationOption {
	return func(s *recalculationService) {
		s.Clock = clock
	}
}

// NewRecalculationService creates a new recalculation service with the provided options
func NewRecalculationService(
	obligationRepo portsrepo.ObligationRepositoryFacade,
	customPlanRepo portsrepo.CustomPlanReader,
	budgetRepo portsrepo.BudgetRepositoryFacade,
	options ...RecalculationOption,
) portssvc.RecalculationSvc {
	svc := &recalculationService{
		obligationRepo: obligationRepo,
		customPlanRepo: customPlanRepo,
		budgetRepo:     budgetRepo,
		horizonMonths:  defaultHorizonMonths,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RecalculationSvc = (*recalculationService)(nil)

// RecalculateGoal stores the actual contribution for month and re-levels every
// later record of the goal so the target is still met on time.
func (s *recalculationService) RecalculateGoal(ctx context.Context, ownerID, goalID string, month domain.YearMonth, actualAmount int64) (*domain.RecalcOutcome, error) {
	if actualAmount < 0 {
		return nil, apperrors.NewValidationError("actual amount cannot be negative")
	}

	goal, err := s.obligationRepo.FindObligation(ctx, domain.KindGoal, goalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load goal", slog.String("goal_id", goalID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, ownerID, goal.OwnerID, "goal "+goalID); err != nil {
		return nil, err
	}

	now := s.Now()
	outcome := &domain.RecalcOutcome{GoalID: goalID, Month: month, RecalculatedAt: now}

	entries, err := s.customPlanRepo.FindCustomPlanEntries(ctx, goalID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom plan entries", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to load custom plan entries: %w", err)
	}
	if len(entries) > 0 {
		s.LogInfo(ctx, "Goal uses a custom plan, skipping recalculation", slog.String("goal_id", goalID))
		outcome.CustomPlan = true
		return outcome, nil
	}

	if goal.Goal == nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("obligation %s is not a goal", goalID))
	}
	if goal.CategoryID == nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("goal %s has no category", goalID))
	}
	terms := goal.Goal

	outcome.Remaining = terms.TargetAmount - terms.CurrentAmount - actualAmount
	newMonthly, err := s.levelAmount(goal, month, actualAmount)
	if err != nil {
		return nil, err
	}

	key := domain.BudgetSourceKey{
		OwnerID:    goal.OwnerID,
		CategoryID: *goal.CategoryID,
		SourceType: domain.SourceGoal,
		SourceID:   goal.ID,
	}

	record, err := s.budgetRepo.FindBudget(ctx, key.OwnerID, key.CategoryID, month)
	if err != nil {
		return nil, err
	}
	if !record.OwnedBy(key.SourceType, key.SourceID) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("goal %s has no budget record for %s", goalID, month))
	}
	if err := s.budgetRepo.UpdateBudgetActual(ctx, record.ID, actualAmount, ownerID); err != nil {
		s.LogError(ctx, err, "Failed to store actual amount", slog.String("budget_id", record.ID))
		return nil, fmt.Errorf("failed to store actual amount: %w", err)
	}

	future, err := s.futureRecords(ctx, key, goal, month)
	if err != nil {
		return nil, err
	}
	if newMonthly <= 0 && outcome.Remaining > 0 && terms.TargetDate != nil {
		// No whole month left before the target date: the balance goes to the records that remain.
		newMonthly = ceilDiv(outcome.Remaining, int64(max(len(future), 1)))
	}
	outcome.NewMonthly = newMonthly

	remaining := outcome.Remaining
	var (
		updates []domain.BudgetRecord
		deletes []string
	)
	for _, rec := range future {
		amount := min(newMonthly, remaining)
		if amount <= 0 {
			deletes = append(deletes, rec.ID)
			continue
		}
		remaining -= amount
		if rec.PlannedAmount == amount {
			continue
		}
		rec.PlannedAmount = amount
		rec.LastUpdatedAt = now
		rec.LastUpdatedBy = ownerID
		updates = append(updates, rec)
	}

	if len(updates) > 0 {
		if err := s.budgetRepo.UpsertBudgets(ctx, updates); err != nil {
			s.LogError(ctx, err, "Failed to update future budgets", slog.String("goal_id", goalID))
			return nil, fmt.Errorf("failed to update future budgets: %w", err)
		}
	}
	if len(deletes) > 0 {
		if err := s.budgetRepo.DeleteBudgetsByIDs(ctx, ownerID, deletes); err != nil {
			s.LogError(ctx, err, "Failed to delete exhausted budgets", slog.String("goal_id", goalID))
			return nil, fmt.Errorf("failed to delete exhausted budgets: %w", err)
		}
	}
	outcome.Updated = len(updates)
	outcome.Deleted = len(deletes)

	if err := s.obligationRepo.UpdateGoalMonthlyContribution(ctx, goalID, newMonthly, ownerID, now); err != nil {
		s.LogError(ctx, err, "Failed to persist monthly contribution", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to persist monthly contribution: %w", err)
	}

	s.LogInfo(ctx, "Goal recalculated",
		slog.String("goal_id", goalID),
		slog.String("month", month.String()),
		slog.Int64("remaining", outcome.Remaining),
		slog.Int64("new_monthly", newMonthly),
		slog.Int("updated", outcome.Updated),
		slog.Int("deleted", outcome.Deleted))
	return outcome, nil
}

// levelAmount derives the new monthly contribution from the month after the override.
// Goals without a target date keep their explicit monthly amount. Zero means the
// target date leaves no month to level over.
func (s *recalculationService) levelAmount(goal *domain.Obligation, month domain.YearMonth, actualAmount int64) (int64, error) {
	terms := goal.Goal
	if terms.TargetDate != nil {
		amount, ok := projection.CalculateMonthlyContribution(
			terms.TargetAmount, terms.CurrentAmount+actualAmount, *terms.TargetDate, month.AddMonths(1).FirstDay())
		if !ok {
			return 0, nil
		}
		return amount, nil
	}
	if goal.Recurrence.MonthlyAmount != nil {
		return *goal.Recurrence.MonthlyAmount, nil
	}
	return 0, apperrors.NewValidationError(fmt.Sprintf("goal %s has neither a target date nor a monthly amount", goal.ID))
}

// futureRecords returns the goal's records after month, oldest first.
func (s *recalculationService) futureRecords(ctx context.Context, key domain.BudgetSourceKey, goal *domain.Obligation, month domain.YearMonth) ([]domain.BudgetRecord, error) {
	years := domain.ForwardWindow(month, s.horizonMonths+1).Years()
	if td := goal.Goal.TargetDate; td != nil {
		for y := years[len(years)-1] + 1; y <= td.Year(); y++ {
			years = append(years, y)
		}
	}

	records, err := s.budgetRepo.FindBudgetsBySource(ctx, key, years)
	if err != nil {
		s.LogError(ctx, err, "Failed to load future budgets", slog.String("goal_id", goal.ID))
		return nil, fmt.Errorf("failed to load future budgets: %w", err)
	}

	future := make([]domain.BudgetRecord, 0, len(records))
	for _, rec := range records {
		if rec.YearMonth().After(month) {
			future = append(future, rec)
		}
	}
	sort.Slice(future, func(i, j int) bool { return future[i].YearMonth().Before(future[j].YearMonth()) })
	return future, nil
}

func ceilDiv(a, b int64) int64 {
	return (a + b - 1) / b
}
