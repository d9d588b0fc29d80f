package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/ports/events"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/yield"
	"github.com/google/uuid"
)

// DefaultYieldCategoryName is the well-known category holding account yield records.
const DefaultYieldCategoryName = "Account Yield"

// yieldService implements the YieldSvc interface
type yieldService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryRepository
	budgetRepo   portsrepo.BudgetRepositoryFacade
	publisher    events.BudgetEventPublisher
	categoryName string
}

// YieldOption is a functional option for configuring the yield service
type YieldOption func(*yieldService)

// WithYieldCategoryName overrides the well-known category name.
func WithYieldCategoryName(name string) YieldOption {
	return func(s *yieldService) {
		if name != "" {
			s.categoryName = name
		}
	}
}

// WithYieldEventPublisher sets the publisher notified after the yield record is created.
func WithYieldEventPublisher(p events.BudgetEventPublisher) YieldOption {
	return func(s *yieldService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithYieldClock overrides the clock.
func WithYieldClock(clock func() time.Time) YieldOption {
	return func(s *yieldService) {
		s.Clock = clock
	}
}

// NewYieldService creates a new yield service with the provided options
func NewYieldService(
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepository,
	budgetRepo portsrepo.BudgetRepositoryFacade,
	options ...YieldOption,
) portssvc.YieldSvc {
	svc := &yieldService{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
		publisher:    events.NoopPublisher{},
		categoryName: DefaultYieldCategoryName,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.YieldSvc = (*yieldService)(nil)

// GenerateMonthlyYield records the interest earned during month as one income
// budget record for the following month. An existing record is never replaced.
func (s *yieldService) GenerateMonthlyYield(ctx context.Context, ownerID string, month domain.YearMonth, asOf time.Time) (*domain.YieldOutcome, error) {
	if asOf.IsZero() {
		asOf = s.Now()
	}
	asOf = domain.DateOnly(asOf)
	if asOf.Before(month.LastDay()) {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("balances as of %s cannot reconstruct %s, which ends later", asOf.Format(time.DateOnly), month))
	}

	target := month.AddMonths(1)
	outcome := &domain.YieldOutcome{Month: month, Target: target, Accounts: []domain.AccountYield{}}

	categoryID, err := s.categoryRepo.EnsureCategory(ctx, ownerID, s.categoryName, domain.CategoryIncome)
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure yield category", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to ensure yield category: %w", err)
	}
	outcome.CategoryID = categoryID

	existing, err := s.budgetRepo.FindBudget(ctx, ownerID, categoryID, target)
	switch {
	case err == nil:
		s.LogInfo(ctx, "Yield record already exists, skipping",
			slog.String("owner_id", ownerID),
			slog.String("month", target.String()),
			slog.String("budget_id", existing.ID))
		outcome.Total = existing.PlannedAmount
		return outcome, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to check existing yield record", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to check existing yield record: %w", err)
	}

	accounts, err := s.accountRepo.ListYieldAccounts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list yield accounts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list yield accounts: %w", err)
	}

	series := make([]yield.AccountSeries, 0, len(accounts))
	for _, acc := range accounts {
		entries, err := s.accountRepo.FindLedgerEntries(ctx, acc.ID, month.FirstDay(), asOf)
		if err != nil {
			s.LogError(ctx, err, "Failed to load ledger, skipping account", slog.String("account_id", acc.ID))
			outcome.Skipped = append(outcome.Skipped, acc.ID)
			continue
		}
		balances, err := yield.ReconstructMonth(acc, asOf, entries, month)
		if err != nil {
			s.LogError(ctx, err, "Failed to reconstruct balances, skipping account", slog.String("account_id", acc.ID))
			outcome.Skipped = append(outcome.Skipped, acc.ID)
			continue
		}
		series = append(series, yield.AccountSeries{Account: acc, Series: balances})
	}

	results, total := yield.Calculate(series)
	outcome.Total = total
	if results != nil {
		outcome.Accounts = results
	}
	if total <= 0 {
		s.LogInfo(ctx, "No positive yield for month",
			slog.String("owner_id", ownerID),
			slog.String("month", month.String()))
		return outcome, nil
	}

	metadata, err := json.Marshal(domain.YieldBreakdown{
		PeriodStart: month.FirstDay(),
		PeriodEnd:   month.LastDay(),
		Total:       total,
		Accounts:    results,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode yield breakdown: %w", err)
	}

	now := s.Now()
	record := domain.BudgetRecord{
		ID:              uuid.NewString(),
		OwnerID:         ownerID,
		CategoryID:      categoryID,
		Year:            target.Year,
		Month:           target.Month,
		PlannedAmount:   total,
		SourceType:      domain.SourceYield,
		IsAutoGenerated: true,
		IsProjected:     target.After(domain.YearMonthOf(now)),
		Description:     fmt.Sprintf("Account yield for %s", month),
		Metadata:        metadata,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}

	created, err := s.budgetRepo.InsertBudgetIfAbsent(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to insert yield record", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to insert yield record: %w", err)
	}
	outcome.Created = created

	if created {
		event := events.BudgetsChanged{
			OwnerID:    ownerID,
			CategoryID: categoryID,
			SourceType: domain.SourceYield,
			Months:     []domain.YearMonth{target},
			OccurredAt: now,
		}
		if err := s.publisher.PublishBudgetsChanged(ctx, event); err != nil {
			s.LogError(ctx, err, "Failed to publish budgets changed event", slog.String("owner_id", ownerID))
		}
	}

	s.LogInfo(ctx, "Monthly yield generated",
		slog.String("owner_id", ownerID),
		slog.String("month", month.String()),
		slog.Int64("total", total),
		slog.Int("accounts", len(results)),
		slog.Bool("created", created))
	return outcome, nil
}
