package domain

import (
	"encoding/json"
	"time"
)

// SourceType identifies what produced a budget record.
type SourceType string

const (
	SourceManual     SourceType = "manual"
	SourceGoal       SourceType = "goal"
	SourceDebt       SourceType = "debt"
	SourceReceivable SourceType = "receivable"
	SourceInvestment SourceType = "investment"
	SourceYield      SourceType = "yield"
)

// BudgetRecord is a materialized planned amount for one category in one calendar month.
// At most one record exists per (OwnerID, CategoryID, Year, Month).
type BudgetRecord struct {
	ID              string          `json:"id"`
	OwnerID         string          `json:"ownerID"`
	CategoryID      string          `json:"categoryID"`
	Year            int             `json:"year"`
	Month           time.Month      `json:"month"`
	PlannedAmount   int64           `json:"plannedAmount"`
	ActualAmount    *int64          `json:"actualAmount,omitempty"`
	SourceType      SourceType      `json:"sourceType"`
	SourceID        *string         `json:"sourceID,omitempty"`
	IsAutoGenerated bool            `json:"isAutoGenerated"`
	IsProjected     bool            `json:"isProjected"`
	Description     string          `json:"description,omitempty"`
	Metadata        json.RawMessage `json:"metadata,omitempty"`
	AuditFields
}

// YearMonth returns the month the record belongs to.
func (b BudgetRecord) YearMonth() YearMonth {
	return YearMonth{Year: b.Year, Month: b.Month}
}

// Source returns the source id or the empty string.
func (b BudgetRecord) Source() string {
	if b.SourceID == nil {
		return ""
	}
	return *b.SourceID
}

// OwnedBy reports whether the record was generated by the given source.
func (b BudgetRecord) OwnedBy(sourceType SourceType, sourceID string) bool {
	return b.SourceType == sourceType && b.Source() == sourceID
}

// BudgetSourceKey scopes the records one obligation owns inside a category.
type BudgetSourceKey struct {
	OwnerID    string
	CategoryID string
	SourceType SourceType
	SourceID   string
}

// ProjectionLine is one planned amount for one month, produced before persistence.
type ProjectionLine struct {
	Month       YearMonth `json:"month" yaml:"month" csv:"-"`
	Amount      int64     `json:"amount" yaml:"amount" csv:"amount"`
	Projected   bool      `json:"projected" yaml:"projected" csv:"projected"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty" csv:"description"`
}

// ReconcileResult counts the per-month decisions made while persisting a projection.
type ReconcileResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Deleted int `json:"deleted"`
}

// Changed reports whether any record was written or removed.
func (r ReconcileResult) Changed() bool {
	return r.Created+r.Updated+r.Deleted > 0
}
