package pgsql

import (
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ObligationRepo: newPgxObligationRepository(dbPool),
		CustomPlanRepo: newPgxCustomPlanRepository(dbPool),
		BudgetRepo:     newPgxBudgetRepository(dbPool),
		AccountRepo:    newPgxAccountRepository(dbPool),
		CategoryRepo:   newPgxCategoryRepository(dbPool),
	}
}
