package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/money_planner/internal/core/ports/events"
)

// RoutingKeyBudgetsChanged is the routing key of budget change notifications.
const RoutingKeyBudgetsChanged = "budgets.changed"

// BudgetsChangedMessage is the wire form of events.BudgetsChanged.
// Months are encoded as YYYY-MM strings.
type BudgetsChangedMessage struct {
	OwnerID    string    `json:"owner_id"`
	CategoryID string    `json:"category_id"`
	SourceType string    `json:"source_type"`
	SourceID   string    `json:"source_id,omitempty"`
	Months     []string  `json:"months"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewBudgetsChangedMessage converts an event into its message form.
func NewBudgetsChangedMessage(e events.BudgetsChanged) *BudgetsChangedMessage {
	months := make([]string, len(e.Months))
	for i, m := range e.Months {
		months[i] = m.String()
	}
	return &BudgetsChangedMessage{
		OwnerID:    e.OwnerID,
		CategoryID: e.CategoryID,
		SourceType: string(e.SourceType),
		SourceID:   e.SourceID,
		Months:     months,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *BudgetsChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// BudgetsChangedMessageFromJSON decodes a message body.
func BudgetsChangedMessageFromJSON(data []byte) (*BudgetsChangedMessage, error) {
	var msg BudgetsChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
