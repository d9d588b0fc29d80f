package services

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// PlanReaderSvc defines read-only plan operations
type PlanReaderSvc interface {
	// Preview projects an obligation over window without writing anything.
	// A nil window uses the configured forward horizon.
	Preview(ctx context.Context, ownerID string, kind domain.ObligationKind, obligationID string, window *domain.MonthWindow) ([]domain.ProjectionLine, error)

	// ListBudgets lists the budget records an obligation generated, using token-based pagination.
	ListBudgets(ctx context.Context, ownerID string, kind domain.ObligationKind, obligationID string, limit int, nextToken *string) ([]domain.BudgetRecord, *string, error)
}

// PlanWriterSvc defines plan operations that persist budget records
type PlanWriterSvc interface {
	// Regenerate rebuilds one obligation's budget records.
	Regenerate(ctx context.Context, req domain.RegenerateRequest) (*domain.PlanOutcome, error)

	// RegenerateAll rebuilds every planned obligation of an owner. One obligation's
	// failure is reported in the outcome and never aborts its siblings.
	RegenerateAll(ctx context.Context, ownerID string, kind *domain.ObligationKind, overwrite bool) (*domain.BatchOutcome, error)

	// ReplaceCustomPlan swaps an obligation's custom entries and regenerates with overwrite.
	ReplaceCustomPlan(ctx context.Context, ownerID string, kind domain.ObligationKind, obligationID string, entries []domain.CustomPlanEntry) (*domain.PlanOutcome, error)
}

// PlanSvcFacade combines all plan-related service interfaces
type PlanSvcFacade interface {
	PlanReaderSvc
	PlanWriterSvc
}

// BudgetReconcilerSvc persists projection lines against existing budget records
type BudgetReconcilerSvc interface {
	// Reconcile writes lines for the source identified by key.
	Reconcile(ctx context.Context, key domain.BudgetSourceKey, window domain.MonthWindow, lines []domain.ProjectionLine, overwrite bool) (domain.ReconcileResult, error)

	// Prune deletes the auto-generated records of a source in a category.
	Prune(ctx context.Context, key domain.BudgetSourceKey) (int, error)
}
