package projection

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// GoalScheduler projects savings goals. A goal without an explicit monthly amount
// derives one from its target date, and no contribution lands after that date.
type GoalScheduler struct{}

var _ Scheduler = GoalScheduler{}

var goalRules = rules{
	kind:           domain.KindGoal,
	impliedMonthly: goalImpliedMonthly,
	horizon: func(o domain.Obligation) *domain.YearMonth {
		if o.Goal.TargetDate == nil {
			return nil
		}
		m := domain.YearMonthOf(*o.Goal.TargetDate)
		return &m
	},
	describe: func(o domain.Obligation) string { return "Contribution to " + o.Name },
}

func (GoalScheduler) Kind() domain.ObligationKind { return domain.KindGoal }

func (GoalScheduler) Generate(o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, today time.Time) ([]domain.ProjectionLine, error) {
	return run(goalRules, o, entries, window, today)
}

// goalImpliedMonthly amortizes the remaining gap from the later of the start date and today.
func goalImpliedMonthly(o domain.Obligation, today time.Time) (int64, bool) {
	if o.Goal.TargetDate == nil {
		return 0, false
	}
	start := domain.DateOnly(today)
	if sd := o.Recurrence.StartDate; sd != nil && sd.After(start) {
		start = domain.DateOnly(*sd)
	}
	return CalculateMonthlyContribution(o.Goal.TargetAmount, o.Goal.CurrentAmount, *o.Goal.TargetDate, start)
}
