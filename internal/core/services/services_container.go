package services

import (
	"github.com/SscSPs/money_planner/internal/core/ports/events"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher events.BudgetEventPublisher) *portssvc.ServiceContainer {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	container := &portssvc.ServiceContainer{}

	// The reconciler is shared by every writer of budget records
	container.Reconciler = NewBudgetReconciler(
		repos.BudgetRepo,
		WithCrossSourceOverwrite(cfg.AllowCrossSourceOverwrite),
	)

	container.Plan = NewPlanService(
		repos.ObligationRepo,
		repos.CustomPlanRepo,
		repos.BudgetRepo,
		container.Reconciler,
		WithHorizonMonths(cfg.PlanHorizonMonths),
		WithRegenerationConcurrency(cfg.RegenerationConcurrency),
		WithEventPublisher(publisher),
	)

	container.Yield = NewYieldService(
		repos.AccountRepo,
		repos.CategoryRepo,
		repos.BudgetRepo,
		WithYieldCategoryName(cfg.YieldCategoryName),
		WithYieldEventPublisher(publisher),
	)

	container.Recalculation = NewRecalculationService(
		repos.ObligationRepo,
		repos.CustomPlanRepo,
		repos.BudgetRepo,
		WithRecalculationHorizon(cfg.PlanHorizonMonths),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PlanSvcFacade       = (*planService)(nil)
	_ portssvc.BudgetReconcilerSvc = (*budgetReconciler)(nil)
	_ portssvc.YieldSvc            = (*yieldService)(nil)
	_ portssvc.RecalculationSvc    = (*recalculationService)(nil)
)
