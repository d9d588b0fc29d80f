package repositories

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// CustomPlanReader defines read operations for custom plan entries
type CustomPlanReader interface {
	// FindCustomPlanEntries retrieves an obligation's entries, optionally limited to a window.
	FindCustomPlanEntries(ctx context.Context, obligationID string, window *domain.MonthWindow) ([]domain.CustomPlanEntry, error)
}

// CustomPlanWriter defines write operations for custom plan entries
type CustomPlanWriter interface {
	// ReplaceCustomPlanEntries atomically deletes every entry of the obligation and inserts entries.
	ReplaceCustomPlanEntries(ctx context.Context, obligationID string, entries []domain.CustomPlanEntry) error
}

// CustomPlanRepositoryFacade combines all custom plan repository interfaces
type CustomPlanRepositoryFacade interface {
	CustomPlanReader
	CustomPlanWriter
}
