package models

// CustomPlanEntry is a user-pinned amount for one obligation month.
type CustomPlanEntry struct {
	EntryID      string `db:"entry_id"`
	OwnerID      string `db:"owner_id"`
	ObligationID string `db:"obligation_id"`
	CategoryID   string `db:"category_id"`
	Year         int    `db:"year"`
	Month        int    `db:"month"`
	Amount       int64  `db:"amount"`
	Description  string `db:"description"`
	AuditFields
}
