package domain

import "time"

// RegenerateRequest asks for one obligation's plan to be rebuilt.
type RegenerateRequest struct {
	OwnerID      string
	Kind         ObligationKind
	ObligationID string
	Overwrite    bool
	// Window defaults to the configured forward horizon starting this month.
	Window *MonthWindow
	// PreviousCategoryID is set when the obligation moved category; its stale records are pruned.
	PreviousCategoryID *string
}

// PlanOutcome reports what one regeneration did.
type PlanOutcome struct {
	ObligationID string           `json:"obligationID"`
	Kind         ObligationKind   `json:"kind"`
	Window       MonthWindow      `json:"window"`
	Lines        []ProjectionLine `json:"lines"`
	Result       ReconcileResult  `json:"result"`
	Pruned       int              `json:"pruned"`
	Qualified    bool             `json:"qualified"`
}

// ObligationFailure records a per-obligation error inside a batch run.
type ObligationFailure struct {
	ObligationID string         `json:"obligationID"`
	Kind         ObligationKind `json:"kind"`
	Error        string         `json:"error"`
}

// BatchOutcome aggregates a multi-obligation regeneration. Failures are non-fatal.
type BatchOutcome struct {
	Succeeded []PlanOutcome       `json:"succeeded"`
	Failed    []ObligationFailure `json:"failed"`
}

// YieldOutcome reports the account-yield record generation for one month.
type YieldOutcome struct {
	Month      YearMonth      `json:"month"`
	Target     YearMonth      `json:"targetMonth"`
	CategoryID string         `json:"categoryID"`
	Total      int64          `json:"total"`
	Accounts   []AccountYield `json:"accounts"`
	Created    bool           `json:"created"`
	Skipped    []string       `json:"skippedAccounts,omitempty"`
}

// RecalcOutcome reports a goal recalculation after an actual was overridden.
type RecalcOutcome struct {
	GoalID         string    `json:"goalID"`
	Month          YearMonth `json:"month"`
	Remaining      int64     `json:"remaining"`
	NewMonthly     int64     `json:"newMonthly"`
	Updated        int       `json:"updated"`
	Deleted        int       `json:"deleted"`
	CustomPlan     bool      `json:"customPlan"`
	RecalculatedAt time.Time `json:"recalculatedAt"`
}
