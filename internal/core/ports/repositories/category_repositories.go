package repositories

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// CategoryRepository defines operations on budget categories
type CategoryRepository interface {
	// EnsureCategory returns the id of the owner's category with name, creating it when absent.
	EnsureCategory(ctx context.Context, ownerID, name string, kind domain.CategoryKind) (string, error)
}
