package pgsql

import (
	"context"

	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for budget categories.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// EnsureCategory returns the id of the owner's category with name, creating it when absent.
func (r *PgxCategoryRepository) EnsureCategory(ctx context.Context, ownerID, name string, kind domain.CategoryKind) (string, error) {
	// The no-op update makes RETURNING yield the existing row on conflict.
	query := `
		INSERT INTO categories (category_id, owner_id, name, kind, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, NOW(), $2, NOW(), $2)
		ON CONFLICT (owner_id, name) DO UPDATE SET name = EXCLUDED.name
		RETURNING category_id;
	`
	var categoryID string
	err := r.Pool.QueryRow(ctx, query, uuid.NewString(), ownerID, name, string(kind)).Scan(&categoryID)
	if err != nil {
		return "", writeError("failed to ensure category "+name, err)
	}
	return categoryID, nil
}
