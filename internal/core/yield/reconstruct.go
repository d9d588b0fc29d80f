// Package yield reconstructs daily account balances and derives the compound
// interest they earned.
package yield

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
)

// Reconstruct walks backwards from balance, valid at the end of asOf's day, and
// returns the start-of-day balance for every day in [from, to]. Entries after
// asOf are ignored. asOf must not be before to.
func Reconstruct(balance int64, asOf time.Time, entries []domain.LedgerEntry, from, to time.Time) ([]domain.DailyBalance, error) {
	from, to, asOf = domain.DateOnly(from), domain.DateOnly(to), domain.DateOnly(asOf)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: window end %s is before start %s", apperrors.ErrValidation, to.Format(time.DateOnly), from.Format(time.DateOnly))
	}
	if asOf.Before(to) {
		return nil, fmt.Errorf("%w: balance anchor %s is before window end %s", apperrors.ErrValidation, asOf.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	deltas := make(map[time.Time]int64, len(entries))
	for _, e := range entries {
		d := domain.DateOnly(e.Date)
		if d.After(asOf) {
			continue
		}
		deltas[d] += e.Amount
	}

	days := int(to.Sub(from).Hours()/24) + 1
	series := make([]domain.DailyBalance, days)

	bal := balance
	for d := asOf; !d.Before(from); d = d.AddDate(0, 0, -1) {
		bal -= deltas[d]
		if !d.After(to) {
			series[int(d.Sub(from).Hours()/24)] = domain.DailyBalance{Date: d, Balance: bal}
		}
	}
	return series, nil
}

// ReconstructMonth reconstructs every day of month.
func ReconstructMonth(account domain.Account, asOf time.Time, entries []domain.LedgerEntry, month domain.YearMonth) ([]domain.DailyBalance, error) {
	return Reconstruct(account.Balance, asOf, entries, month.FirstDay(), month.LastDay())
}
