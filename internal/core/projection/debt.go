package projection

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// DebtScheduler projects repayments of active or negotiated debts, either as
// installments or as a recurring monthly payment.
type DebtScheduler struct{}

var _ Scheduler = DebtScheduler{}

var debtRules = rules{
	kind:         domain.KindDebt,
	installments: true,
	describe:     func(o domain.Obligation) string { return "Payment of " + o.Name },
}

func (DebtScheduler) Kind() domain.ObligationKind { return domain.KindDebt }

func (DebtScheduler) Generate(o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, today time.Time) ([]domain.ProjectionLine, error) {
	return run(debtRules, o, entries, window, today)
}
