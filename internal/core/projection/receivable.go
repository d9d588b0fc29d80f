package projection

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// ReceivableScheduler projects expected receipts of pending or negotiated receivables.
type ReceivableScheduler struct{}

var _ Scheduler = ReceivableScheduler{}

var receivableRules = rules{
	kind:         domain.KindReceivable,
	installments: true,
	describe:     func(o domain.Obligation) string { return "Receipt from " + o.Name },
}

func (ReceivableScheduler) Kind() domain.ObligationKind { return domain.KindReceivable }

func (ReceivableScheduler) Generate(o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, today time.Time) ([]domain.ProjectionLine, error) {
	return run(receivableRules, o, entries, window, today)
}
