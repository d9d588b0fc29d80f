package projection

import (
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
)

// Scheduler produces the projection lines of one obligation kind.
type Scheduler interface {
	// Kind returns the obligation kind handled by the scheduler.
	Kind() domain.ObligationKind

	// Generate projects o across window. entries are all of the obligation's custom
	// plan entries and, when any exist, replace the computed schedule; today decides
	// which lines are projected. A disqualified or exhausted
	// obligation yields an empty result, not an error.
	Generate(o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, today time.Time) ([]domain.ProjectionLine, error)
}

// ForKind returns the scheduler for kind.
func ForKind(kind domain.ObligationKind) (Scheduler, error) {
	switch kind {
	case domain.KindGoal:
		return GoalScheduler{}, nil
	case domain.KindDebt:
		return DebtScheduler{}, nil
	case domain.KindReceivable:
		return ReceivableScheduler{}, nil
	case domain.KindInvestment:
		return InvestmentScheduler{}, nil
	}
	return nil, fmt.Errorf("%w: no scheduler for obligation kind %q", apperrors.ErrValidation, kind)
}

// Generate dispatches o to the scheduler of its kind.
func Generate(o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, today time.Time) ([]domain.ProjectionLine, error) {
	s, err := ForKind(o.Kind)
	if err != nil {
		return nil, err
	}
	return s.Generate(o, entries, window, today)
}

// rules captures how a kind deviates from the shared projection sequence.
type rules struct {
	kind domain.ObligationKind
	// installments enables the installment branch.
	installments bool
	// impliedMonthly resolves the per-month amount when no explicit amount is set.
	impliedMonthly func(o domain.Obligation, today time.Time) (int64, bool)
	// horizon is the last month a contribution may land in, if any.
	horizon func(o domain.Obligation) *domain.YearMonth
	// describe labels frequency lines.
	describe func(o domain.Obligation) string
}

func run(r rules, o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, today time.Time) ([]domain.ProjectionLine, error) {
	if o.Kind != r.kind {
		return nil, fmt.Errorf("%w: %s scheduler cannot project a %s", apperrors.ErrValidation, r.kind, o.Kind)
	}
	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !o.Qualifies() {
		return nil, nil
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	today = domain.DateOnly(today)
	current := domain.YearMonthOf(today)

	if lines, custom := customLines(o, entries, window, current); custom {
		return lines, nil
	}

	remaining, bounded := o.Remaining()
	if bounded && remaining <= 0 {
		return nil, nil
	}

	if r.installments && o.Recurrence.Installments != nil {
		return installmentLines(o, window, today, remaining), nil
	}

	return frequencyLines(r, o, window, today, remaining, bounded), nil
}

// customLines emits the in-window custom entries verbatim, ordered by month.
// custom reports whether o has any entry at all; entries outside the window still
// replace the computed schedule, so the result may be empty.
func customLines(o domain.Obligation, entries []domain.CustomPlanEntry, window domain.MonthWindow, current domain.YearMonth) (lines []domain.ProjectionLine, custom bool) {
	for _, e := range entries {
		if e.ObligationID != "" && e.ObligationID != o.ID {
			continue
		}
		custom = true
		if !window.Contains(e.Month) {
			continue
		}
		lines = append(lines, domain.ProjectionLine{
			Month:       e.Month,
			Amount:      e.Amount,
			Projected:   e.Month.After(current),
			Description: e.Description,
		})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Month.Before(lines[j].Month) })
	return lines, custom
}

// anchorDate is the date a schedule counts from: the start date when set, else
// the creation date, else fallback.
func anchorDate(o domain.Obligation, fallback time.Time) time.Time {
	switch {
	case o.Recurrence.StartDate != nil:
		return domain.DateOnly(*o.Recurrence.StartDate)
	case !o.CreatedAt.IsZero():
		return domain.DateOnly(o.CreatedAt)
	}
	return fallback
}

// installmentDate returns the installment day in m, clamped to the month's length.
func installmentDate(m domain.YearMonth, day int) time.Time {
	if last := m.DaysIn(); day > last {
		day = last
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.UTC)
}

// installmentLines steps one month at a time from the first installment on or after
// the anchor date. Installments before the window count against the installment
// count but not against the outstanding balance.
func installmentLines(o domain.Obligation, window domain.MonthWindow, today time.Time, remaining int64) []domain.ProjectionLine {
	plan := *o.Recurrence.Installments
	current := domain.YearMonthOf(today)

	start := anchorDate(o, today)
	m := domain.YearMonthOf(start)
	if installmentDate(m, plan.DayOfMonth).Before(start) {
		m = m.AddMonths(1)
	}

	var lines []domain.ProjectionLine
	for n := 1; n <= plan.Count && remaining > 0 && !m.After(window.End); n, m = n+1, m.AddMonths(1) {
		if m.Before(window.Start) {
			continue
		}
		amount := min(plan.Amount, remaining)
		remaining -= amount
		lines = append(lines, domain.ProjectionLine{
			Month:       m,
			Amount:      amount,
			Projected:   m.After(current),
			Description: fmt.Sprintf("%s installment %d/%d", o.Name, n, plan.Count),
		})
	}
	return lines
}

// frequencyLines walks the window month by month, skipping months the frequency
// excludes and clamping each amount to the outstanding balance.
func frequencyLines(r rules, o domain.Obligation, window domain.MonthWindow, today time.Time, remaining int64, bounded bool) []domain.ProjectionLine {
	rec := o.Recurrence

	var monthly int64
	switch {
	case rec.MonthlyAmount != nil:
		monthly = *rec.MonthlyAmount
	case r.impliedMonthly != nil:
		implied, ok := r.impliedMonthly(o, today)
		if !ok {
			return nil
		}
		monthly = implied
	}
	if monthly <= 0 {
		return nil
	}

	anchor := anchorDate(o, window.Start.FirstDay())
	anchorMonth := domain.YearMonthOf(anchor)

	var horizon *domain.YearMonth
	if r.horizon != nil {
		horizon = r.horizon(o)
	}

	description := ""
	if r.describe != nil {
		description = r.describe(o)
	}

	from := window.Start
	if anchorMonth.Before(from) {
		from = anchorMonth
	}
	current := domain.YearMonthOf(today)

	var lines []domain.ProjectionLine
	occurrences := 0
	for m := from; !m.After(window.End); m = m.AddMonths(1) {
		if horizon != nil && m.After(*horizon) {
			break
		}
		if !ShouldIncludeInMonth(rec.Frequency, anchor, m) {
			continue
		}
		occurrences++
		if rec.ContributionCount != nil && occurrences > *rec.ContributionCount {
			break
		}
		if m.Before(window.Start) {
			continue
		}

		amount := monthly
		if bounded {
			if remaining <= 0 {
				break
			}
			amount = min(amount, remaining)
			remaining -= amount
		}
		lines = append(lines, domain.ProjectionLine{
			Month:       m,
			Amount:      amount,
			Projected:   m.After(current),
			Description: description,
		})
	}
	return lines
}
