package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type CategoryRepository struct {
	db *sql.DB
}

var _ portsrepo.CategoryRepository = (*CategoryRepository)(nil)

// EnsureCategory returns the id of the owner's category with name, creating it when absent.
func (r *CategoryRepository) EnsureCategory(ctx context.Context, ownerID, name string, kind domain.CategoryKind) (string, error) {
	now := formatTime(time.Now())
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO categories (category_id, owner_id, name, kind, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id, name) DO NOTHING`,
		uuid.NewString(), ownerID, name, string(kind), now, ownerID, now, ownerID)
	if err != nil {
		return "", writeError("failed to ensure category "+name, err)
	}

	var categoryID string
	err = r.db.QueryRowContext(ctx, "SELECT category_id FROM categories WHERE owner_id = ? AND name = ?", ownerID, name).Scan(&categoryID)
	if err != nil {
		return "", apperrors.NewAppError(500, "failed to read category "+name, err)
	}
	return categoryID, nil
}
