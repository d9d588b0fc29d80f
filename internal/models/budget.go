package models

// Budget is a row of the budgets table. (owner_id, category_id, year, month) is unique.
type Budget struct {
	BudgetID        string  `db:"budget_id"`
	OwnerID         string  `db:"owner_id"`
	CategoryID      string  `db:"category_id"`
	Year            int     `db:"year"`
	Month           int     `db:"month"`
	PlannedAmount   int64   `db:"planned_amount"`
	ActualAmount    *int64  `db:"actual_amount"`
	SourceType      string  `db:"source_type"`
	SourceID        *string `db:"source_id"`
	IsAutoGenerated bool    `db:"is_auto_generated"`
	IsProjected     bool    `db:"is_projected"`
	Description     string  `db:"description"`
	Metadata        []byte  `db:"metadata"`
	AuditFields
}
