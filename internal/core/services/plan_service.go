package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/ports/events"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/projection"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	defaultHorizonMonths = 12
	defaultConcurrency   = 4
	defaultPageLimit     = 20
	maxPageLimit         = 100
)

// planService implements the PlanSvcFacade interface
type planService struct {
	BaseService
	obligationRepo portsrepo.ObligationReader
	customPlanRepo portsrepo.CustomPlanRepositoryFacade
	budgetRepo     portsrepo.BudgetReader
	reconciler     portssvc.BudgetReconcilerSvc
	publisher      events.BudgetEventPublisher
	horizonMonths  int
	concurrency    int
}

// PlanOption is a functional option for configuring the plan service
type PlanOption func(*planService)

// WithHorizonMonths sets the default and maximum window length.
func WithHorizonMonths(months int) PlanOption {
	return func(s *planService) {
		if months > 0 {
			s.horizonMonths = months
		}
	}
}

// WithRegenerationConcurrency bounds how many obligations RegenerateAll processes at once.
func WithRegenerationConcurrency(n int) PlanOption {
	return func(s *planService) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithEventPublisher sets the publisher notified after budgets change.
func WithEventPublisher(p events.BudgetEventPublisher) PlanOption {
	return func(s *planService) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithPlanClock overrides the clock deciding the current month.
func WithPlanClock(clock func() time.Time) PlanOption {
	return func(s *planService) {
		s.Clock = clock
	}
}

// NewPlanService creates a new plan service with the provided options
func NewPlanService(
	obligationRepo portsrepo.ObligationReader,
	customPlanRepo portsrepo.CustomPlanRepositoryFacade,
	budgetRepo portsrepo.BudgetReader,
	reconciler portssvc.BudgetReconcilerSvc,
	options ...PlanOption,
) portssvc.PlanSvcFacade {
	svc := &planService{
		obligationRepo: obligationRepo,
		customPlanRepo: customPlanRepo,
		budgetRepo:     budgetRepo,
		reconciler:     reconciler,
		publisher:      events.NoopPublisher{},
		horizonMonths:  defaultHorizonMonths,
		concurrency:    defaultConcurrency,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PlanSvcFacade = (*planService)(nil)

// loadOwned fetches an obligation and checks it belongs to ownerID.
func (s *planService) loadOwned(ctx context.Context, ownerID string, kind domain.ObligationKind, obligationID string) (*domain.Obligation, error) {
	o, err := s.obligationRepo.FindObligation(ctx, kind, obligationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load obligation",
				slog.String("kind", string(kind)),
				slog.String("obligation_id", obligationID))
		}
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, ownerID, o.OwnerID, fmt.Sprintf("%s %s", kind, obligationID)); err != nil {
		return nil, err
	}
	return o, nil
}

// resolveWindow defaults to the forward horizon from the current month and
// rejects windows longer than the horizon.
func (s *planService) resolveWindow(w *domain.MonthWindow) (domain.MonthWindow, error) {
	if w == nil {
		return domain.ForwardWindow(domain.YearMonthOf(s.Now()), s.horizonMonths), nil
	}
	if err := w.Validate(); err != nil {
		return domain.MonthWindow{}, apperrors.NewValidationError(err.Error())
	}
	if w.Len() > s.horizonMonths {
		return domain.MonthWindow{}, apperrors.NewValidationError(
			fmt.Sprintf("window %s spans %d months, more than the %d month horizon", w, w.Len(), s.horizonMonths))
	}
	return *w, nil
}

// project loads every custom plan entry of o, not just the in-window ones, since
// any entry at all replaces the computed schedule.
func (s *planService) project(ctx context.Context, o *domain.Obligation, window domain.MonthWindow) ([]domain.ProjectionLine, error) {
	entries, err := s.customPlanRepo.FindCustomPlanEntries(ctx, o.ID, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to load custom plan entries", slog.String("obligation_id", o.ID))
		return nil, fmt.Errorf("failed to load custom plan entries: %w", err)
	}
	lines, err := projection.Generate(*o, entries, window, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to project obligation",
			slog.String("kind", string(o.Kind)),
			slog.String("obligation_id", o.ID))
		return nil, err
	}
	return lines, nil
}

// Preview projects an obligation without writing anything.
func (s *planService) Preview(ctx context.Context, ownerID string, kind domain.ObligationKind, obligationID string, window *domain.MonthWindow) ([]domain.ProjectionLine, error) {
	o, err := s.loadOwned(ctx, ownerID, kind, obligationID)
	if err != nil {
		return nil, err
	}
	w, err := s.resolveWindow(window)
	if err != nil {
		return nil, err
	}
	lines, err := s.project(ctx, o, w)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []domain.ProjectionLine{}
	}
	return lines, nil
}

// Regenerate rebuilds one obligation's budget records.
func (s *planService) Regenerate(ctx context.Context, req domain.RegenerateRequest) (*domain.PlanOutcome, error) {
	o, err := s.loadOwned(ctx, req.OwnerID, req.Kind, req.ObligationID)
	if err != nil {
		return nil, err
	}
	w, err := s.resolveWindow(req.Window)
	if err != nil {
		return nil, err
	}
	return s.regenerate(ctx, o, w, req.Overwrite, req.PreviousCategoryID)
}

func (s *planService) regenerate(ctx context.Context, o *domain.Obligation, window domain.MonthWindow, overwrite bool, previousCategoryID *string) (*domain.PlanOutcome, error) {
	outcome := &domain.PlanOutcome{
		ObligationID: o.ID,
		Kind:         o.Kind,
		Window:       window,
		Lines:        []domain.ProjectionLine{},
		Qualified:    o.Qualifies(),
	}
	key := domain.BudgetSourceKey{
		OwnerID:    o.OwnerID,
		CategoryID: o.Category(),
		SourceType: o.Kind.SourceType(),
		SourceID:   o.ID,
	}

	if !outcome.Qualified {
		// Disqualified obligations leave no auto-generated records behind.
		n, err := s.reconciler.Prune(ctx, key)
		if err != nil {
			return nil, err
		}
		outcome.Pruned += n
	} else {
		lines, err := s.project(ctx, o, window)
		if err != nil {
			return nil, err
		}
		if lines != nil {
			outcome.Lines = lines
		}
		result, err := s.reconciler.Reconcile(ctx, key, window, outcome.Lines, overwrite)
		if err != nil {
			return nil, err
		}
		outcome.Result = result
		if result.Changed() {
			s.publish(ctx, key, outcome.Lines)
		}
	}

	if previousCategoryID != nil && *previousCategoryID != "" && *previousCategoryID != key.CategoryID {
		prevKey := key
		prevKey.CategoryID = *previousCategoryID
		n, err := s.reconciler.Prune(ctx, prevKey)
		if err != nil {
			return nil, err
		}
		outcome.Pruned += n
		if n > 0 {
			s.publish(ctx, prevKey, nil)
		}
	}
	if !outcome.Qualified && outcome.Pruned > 0 && key.CategoryID != "" {
		s.publish(ctx, key, nil)
	}

	s.LogInfo(ctx, "Obligation plan regenerated",
		slog.String("kind", string(o.Kind)),
		slog.String("obligation_id", o.ID),
		slog.String("window", window.String()),
		slog.Bool("qualified", outcome.Qualified),
		slog.Int("lines", len(outcome.Lines)),
		slog.Int("created", outcome.Result.Created),
		slog.Int("updated", outcome.Result.Updated),
		slog.Int("skipped", outcome.Result.Skipped),
		slog.Int("deleted", outcome.Result.Deleted),
		slog.Int("pruned", outcome.Pruned))
	return outcome, nil
}

// publish notifies downstream consumers. Failures are logged and never returned.
func (s *planService) publish(ctx context.Context, key domain.BudgetSourceKey, lines []domain.ProjectionLine) {
	months := make([]domain.YearMonth, 0, len(lines))
	for _, l := range lines {
		months = append(months, l.Month)
	}
	event := events.BudgetsChanged{
		OwnerID:    key.OwnerID,
		CategoryID: key.CategoryID,
		SourceType: key.SourceType,
		SourceID:   key.SourceID,
		Months:     months,
		OccurredAt: s.Now(),
	}
	if err := s.publisher.PublishBudgetsChanged(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish budgets changed event",
			slog.String("source_id", key.SourceID),
			slog.String("category_id", key.CategoryID))
	}
}

// RegenerateAll rebuilds every planned obligation of the owner with bounded concurrency.
func (s *planService) RegenerateAll(ctx context.Context, ownerID string, kind *domain.ObligationKind, overwrite bool) (*domain.BatchOutcome, error) {
	obligations, err := s.obligationRepo.ListPlannedObligations(ctx, ownerID, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list planned obligations", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list planned obligations: %w", err)
	}

	window := domain.ForwardWindow(domain.YearMonthOf(s.Now()), s.horizonMonths)
	batch := &domain.BatchOutcome{
		Succeeded: []domain.PlanOutcome{},
		Failed:    []domain.ObligationFailure{},
	}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range obligations {
		o := &obligations[i]
		g.Go(func() error {
			outcome, err := s.regenerate(ctx, o, window, overwrite, nil)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.LogError(ctx, err, "Obligation regeneration failed",
					slog.String("kind", string(o.Kind)),
					slog.String("obligation_id", o.ID))
				batch.Failed = append(batch.Failed, domain.ObligationFailure{
					ObligationID: o.ID,
					Kind:         o.Kind,
					Error:        err.Error(),
				})
				return nil
			}
			batch.Succeeded = append(batch.Succeeded, *outcome)
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(batch.Succeeded, func(i, j int) bool { return batch.Succeeded[i].ObligationID < batch.Succeeded[j].ObligationID })
	sort.Slice(batch.Failed, func(i, j int) bool { return batch.Failed[i].ObligationID < batch.Failed[j].ObligationID })

	s.LogInfo(ctx, "Batch regeneration finished",
		slog.String("owner_id", ownerID),
		slog.Int("succeeded", len(batch.Succeeded)),
		slog.Int("failed", len(batch.Failed)))
	return batch, nil
}

// ReplaceCustomPlan swaps the obligation's custom entries wholesale and regenerates with overwrite.
func (s *planService) ReplaceCustomPlan(ctx context.Context, ownerID string, kind domain.ObligationKind, obligationID string, entries []domain.CustomPlanEntry) (*domain.PlanOutcome, error) {
	o, err := s.loadOwned(ctx, ownerID, kind, obligationID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	seen := make(map[domain.YearMonth]bool, len(entries))
	prepared := make([]domain.CustomPlanEntry, 0, len(entries))
	for _, e := range entries {
		if e.Month.IsZero() {
			return nil, apperrors.NewValidationError("custom plan entry month is required")
		}
		if e.Amount <= 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("custom plan entry for %s must have a positive amount", e.Month))
		}
		if seen[e.Month] {
			return nil, apperrors.NewValidationError(fmt.Sprintf("duplicate custom plan entry for %s", e.Month))
		}
		seen[e.Month] = true

		e.ID = uuid.NewString()
		e.OwnerID = o.OwnerID
		e.ObligationID = o.ID
		e.CategoryID = o.Category()
		e.AuditFields = domain.AuditFields{CreatedAt: now, CreatedBy: ownerID, LastUpdatedAt: now, LastUpdatedBy: ownerID}
		prepared = append(prepared, e)
	}
	sort.Slice(prepared, func(i, j int) bool { return prepared[i].Month.Before(prepared[j].Month) })

	if err := s.customPlanRepo.ReplaceCustomPlanEntries(ctx, o.ID, prepared); err != nil {
		s.LogError(ctx, err, "Failed to replace custom plan entries", slog.String("obligation_id", o.ID))
		return nil, fmt.Errorf("failed to replace custom plan entries: %w", err)
	}
	s.LogInfo(ctx, "Custom plan replaced",
		slog.String("obligation_id", o.ID),
		slog.Int("entries", len(prepared)))

	window := domain.ForwardWindow(domain.YearMonthOf(now), s.horizonMonths)
	return s.regenerate(ctx, o, window, true, nil)
}

// ListBudgets lists the records generated by an obligation.
func (s *planService) ListBudgets(ctx context.Context, ownerID string, kind domain.ObligationKind, obligationID string, limit int, nextToken *string) ([]domain.BudgetRecord, *string, error) {
	o, err := s.loadOwned(ctx, ownerID, kind, obligationID)
	if err != nil {
		return nil, nil, err
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	records, next, err := s.budgetRepo.ListBudgetsBySource(ctx, o.OwnerID, o.Kind.SourceType(), o.ID, limit, nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list budgets", slog.String("obligation_id", o.ID))
		}
		return nil, nil, err
	}
	if records == nil {
		records = []domain.BudgetRecord{}
	}
	return records, next, nil
}
