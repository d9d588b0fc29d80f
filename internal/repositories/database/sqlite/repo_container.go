package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
)

func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ObligationRepo: &ObligationRepository{db: db},
		CustomPlanRepo: &CustomPlanRepository{db: db},
		BudgetRepo:     &BudgetRepository{db: db},
		AccountRepo:    &AccountRepository{db: db},
		CategoryRepo:   &CategoryRepository{db: db},
	}
}
