package domain

// CustomPlanEntry is a user-specified amount for one month that overrides frequency
// and installment projection for its obligation. Unique per (ObligationID, Month).
type CustomPlanEntry struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerID"`
	ObligationID string    `json:"obligationID"`
	CategoryID   string    `json:"categoryID"`
	Month        YearMonth `json:"month"`
	Amount       int64     `json:"amount"`
	Description  string    `json:"description,omitempty"`
	AuditFields
}
