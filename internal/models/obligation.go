package models

import "time"

// Obligation is the single-table row for goals, debts, receivables and investments.
// TargetAmount and ProgressAmount hold the kind-specific totals:
//
//	goal:       target / current
//	debt:       total / paid
//	receivable: total / received
//	investment: optional target / invested
type Obligation struct {
	ObligationID      string     `db:"obligation_id"`
	OwnerID           string     `db:"owner_id"`
	Name              string     `db:"name"`
	Kind              string     `db:"kind"`
	CategoryID        *string    `db:"category_id"`
	IncludeInPlan     bool       `db:"include_in_plan"`
	Status            string     `db:"status"`
	Frequency         string     `db:"frequency"`
	MonthlyAmount     *int64     `db:"monthly_amount"`
	StartDate         *time.Time `db:"start_date"`
	ContributionCount *int       `db:"contribution_count"`
	InstallmentAmount *int64     `db:"installment_amount"`
	InstallmentCount  *int       `db:"installment_count"`
	InstallmentDay    *int       `db:"installment_day"`
	TargetAmount      *int64     `db:"target_amount"`
	ProgressAmount    int64      `db:"progress_amount"`
	TargetDate        *time.Time `db:"target_date"`
	AuditFields
}
