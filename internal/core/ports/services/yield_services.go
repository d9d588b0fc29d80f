package services

import (
	"context"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// YieldSvc generates the monthly account-yield budget record
type YieldSvc interface {
	// GenerateMonthlyYield reconstructs month for every yield-bearing account of the owner,
	// using balances valid as of asOf, and records the total for the following month.
	GenerateMonthlyYield(ctx context.Context, ownerID string, month domain.YearMonth, asOf time.Time) (*domain.YieldOutcome, error)
}

// RecalculationSvc reacts to manual corrections of a goal's actual contribution
type RecalculationSvc interface {
	// RecalculateGoal stores actualAmount on month's record and re-levels the goal's future records.
	RecalculateGoal(ctx context.Context, ownerID, goalID string, month domain.YearMonth, actualAmount int64) (*domain.RecalcOutcome, error)
}
