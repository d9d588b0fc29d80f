package events

import (
	"context"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
)

// BudgetsChanged is published after budget records of one source were written or removed.
type BudgetsChanged struct {
	OwnerID    string             `json:"owner_id"`
	CategoryID string             `json:"category_id"`
	SourceType domain.SourceType  `json:"source_type"`
	SourceID   string             `json:"source_id"`
	Months     []domain.YearMonth `json:"months"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// BudgetEventPublisher notifies downstream consumers (report caches, projections) of budget changes.
type BudgetEventPublisher interface {
	PublishBudgetsChanged(ctx context.Context, event BudgetsChanged) error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

var _ BudgetEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishBudgetsChanged(context.Context, BudgetsChanged) error { return nil }
