package projection

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// InvestmentScheduler projects recurring contributions to active investments.
// Investments without a target amount contribute for the whole window.
type InvestmentScheduler struct{}

var _ Scheduler = InvestmentScheduler{}

var investmentRules = rules{
	kind:     domain.KindInvestment,
	describe: func(o domain.Obligation) string { return "Investment in " + o.Name },
}

func (InvestmentScheduler) Kind() domain.ObligationKind { return domain.KindInvestment }

func (InvestmentScheduler) Generate(o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, today time.Time) ([]domain.ProjectionLine, error) {
	return run(investmentRules, o, entries, window, today)
}
