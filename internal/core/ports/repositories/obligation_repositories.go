package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// ObligationReader defines read operations for obligation data
type ObligationReader interface {
	// FindObligation retrieves one obligation of the given kind.
	FindObligation(ctx context.Context, kind domain.ObligationKind, obligationID string) (*domain.Obligation, error)

	// ListPlannedObligations lists an owner's obligations flagged for inclusion in the plan,
	// plus excluded ones that still own auto-generated budget records.
	// A nil kind lists every kind.
	ListPlannedObligations(ctx context.Context, ownerID string, kind *domain.ObligationKind) ([]domain.Obligation, error)
}

// ObligationWriter defines write operations the engine performs on obligations
type ObligationWriter interface {
	// UpdateGoalMonthlyContribution persists a recalculated monthly amount onto a goal.
	UpdateGoalMonthlyContribution(ctx context.Context, goalID string, monthlyAmount int64, userID string, now time.Time) error
}

// ObligationRepositoryFacade combines all obligation-related repository interfaces
type ObligationRepositoryFacade interface {
	ObligationReader
	ObligationWriter
}
