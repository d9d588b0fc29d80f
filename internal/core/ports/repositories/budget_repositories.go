package repositories

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// BudgetReader defines read operations for budget records
type BudgetReader interface {
	// FindBudgetsByCategory retrieves every record of a category in the given years, whatever its source.
	FindBudgetsByCategory(ctx context.Context, ownerID, categoryID string, years []int) ([]domain.BudgetRecord, error)

	// FindBudgetsBySource retrieves the records one source owns in a category for the given years.
	FindBudgetsBySource(ctx context.Context, key domain.BudgetSourceKey, years []int) ([]domain.BudgetRecord, error)

	// FindBudget retrieves the record at (owner, category, month).
	FindBudget(ctx context.Context, ownerID, categoryID string, month domain.YearMonth) (*domain.BudgetRecord, error)

	// ListBudgetsBySource lists the records of a source across categories, oldest month first,
	// using token-based pagination. It returns the records, a token for the next page, and an error.
	ListBudgetsBySource(ctx context.Context, ownerID string, sourceType domain.SourceType, sourceID string, limit int, nextToken *string) ([]domain.BudgetRecord, *string, error)
}

// BudgetWriter defines write operations for budget records
type BudgetWriter interface {
	// UpsertBudgets inserts or replaces records on the (owner, category, year, month) key.
	UpsertBudgets(ctx context.Context, records []domain.BudgetRecord) error

	// InsertBudgetIfAbsent inserts record unless its key is taken. It reports whether a row was written.
	InsertBudgetIfAbsent(ctx context.Context, record domain.BudgetRecord) (bool, error)

	// DeleteAutoGeneratedBudgets removes the auto-generated records of a source in a category.
	// It returns the number of records removed.
	DeleteAutoGeneratedBudgets(ctx context.Context, key domain.BudgetSourceKey) (int, error)

	// DeleteBudgetsByIDs removes specific records.
	DeleteBudgetsByIDs(ctx context.Context, ownerID string, ids []string) error

	// UpdateBudgetActual stores the actual amount observed for a record.
	UpdateBudgetActual(ctx context.Context, id string, actual int64, userID string) error
}

// BudgetRepositoryFacade combines all budget-related repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
