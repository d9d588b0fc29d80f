package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ObligationKind discriminates the obligation payload.
type ObligationKind string

const (
	KindGoal       ObligationKind = "goal"
	KindDebt       ObligationKind = "debt"
	KindReceivable ObligationKind = "receivable"
	KindInvestment ObligationKind = "investment"
)

// AllObligationKinds lists every kind in scheduling order.
var AllObligationKinds = []ObligationKind{KindGoal, KindDebt, KindReceivable, KindInvestment}

// ParseObligationKind accepts the lower-case kind name.
func ParseObligationKind(s string) (ObligationKind, error) {
	k := ObligationKind(s)
	switch k {
	case KindGoal, KindDebt, KindReceivable, KindInvestment:
		return k, nil
	}
	return "", fmt.Errorf("unknown obligation kind %q", s)
}

// SourceType returns the budget source type owned by this kind.
func (k ObligationKind) SourceType() SourceType {
	return SourceType(k)
}

// Frequency is the contribution cadence of a recurrence.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Valid reports whether f is a known frequency. The empty frequency is valid and means monthly.
func (f Frequency) Valid() bool {
	switch f {
	case "", FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// GoalStatus values.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalPaused    GoalStatus = "paused"
	GoalCompleted GoalStatus = "completed"
	GoalCancelled GoalStatus = "cancelled"
)

// DebtStatus values.
type DebtStatus string

const (
	DebtActive     DebtStatus = "active"
	DebtNegotiated DebtStatus = "negotiated"
	DebtSettled    DebtStatus = "settled"
	DebtCancelled  DebtStatus = "cancelled"
)

// ReceivableStatus values.
type ReceivableStatus string

const (
	ReceivablePending    ReceivableStatus = "pending"
	ReceivableNegotiated ReceivableStatus = "negotiated"
	ReceivableReceived   ReceivableStatus = "received"
	ReceivableCancelled  ReceivableStatus = "cancelled"
)

// InvestmentStatus values.
type InvestmentStatus string

const (
	InvestmentActive  InvestmentStatus = "active"
	InvestmentSold    InvestmentStatus = "sold"
	InvestmentMatured InvestmentStatus = "matured"
)

// InstallmentPlan is a fixed-amount, fixed-count repayment anchored to a day of the month.
type InstallmentPlan struct {
	Amount     int64 `json:"amount" validate:"gt=0"`
	Count      int   `json:"count" validate:"gt=0"`
	DayOfMonth int   `json:"dayOfMonth" validate:"gte=1,lte=31"`
}

// Recurrence describes how an obligation contributes over time.
type Recurrence struct {
	Frequency         Frequency        `json:"frequency,omitempty"`
	MonthlyAmount     *int64           `json:"monthlyAmount,omitempty" validate:"omitempty,gt=0"`
	StartDate         *time.Time       `json:"startDate,omitempty"`
	ContributionCount *int             `json:"contributionCount,omitempty" validate:"omitempty,gt=0"`
	Installments      *InstallmentPlan `json:"installments,omitempty"`
}

// GoalTerms is the savings goal payload.
type GoalTerms struct {
	Status        GoalStatus `json:"status" validate:"required,oneof=active paused completed cancelled"`
	TargetAmount  int64      `json:"targetAmount" validate:"gte=0"`
	CurrentAmount int64      `json:"currentAmount" validate:"gte=0"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
}

// DebtTerms is the debt payload.
type DebtTerms struct {
	Status      DebtStatus `json:"status" validate:"required,oneof=active negotiated settled cancelled"`
	TotalAmount int64      `json:"totalAmount" validate:"gte=0"`
	PaidAmount  int64      `json:"paidAmount" validate:"gte=0"`
}

// ReceivableTerms is the receivable payload.
type ReceivableTerms struct {
	Status         ReceivableStatus `json:"status" validate:"required,oneof=pending negotiated received cancelled"`
	TotalAmount    int64            `json:"totalAmount" validate:"gte=0"`
	ReceivedAmount int64            `json:"receivedAmount" validate:"gte=0"`
}

// InvestmentTerms is the recurring investment payload. A nil TargetAmount means no ceiling.
type InvestmentTerms struct {
	Status         InvestmentStatus `json:"status" validate:"required,oneof=active sold matured"`
	TargetAmount   *int64           `json:"targetAmount,omitempty" validate:"omitempty,gte=0"`
	InvestedAmount int64            `json:"investedAmount" validate:"gte=0"`
}

// Obligation is a financial commitment that may generate planned monthly amounts.
// Exactly one of Goal, Debt, Receivable or Investment is set, matching Kind.
type Obligation struct {
	ID            string         `json:"id" validate:"required"`
	OwnerID       string         `json:"ownerID" validate:"required"`
	Name          string         `json:"name"`
	Kind          ObligationKind `json:"kind" validate:"required,oneof=goal debt receivable investment"`
	CategoryID    *string        `json:"categoryID,omitempty"`
	IncludeInPlan bool           `json:"includeInPlan"`
	Recurrence    Recurrence     `json:"recurrence"`

	Goal       *GoalTerms       `json:"goal,omitempty"`
	Debt       *DebtTerms       `json:"debt,omitempty"`
	Receivable *ReceivableTerms `json:"receivable,omitempty"`
	Investment *InvestmentTerms `json:"investment,omitempty"`

	AuditFields
}

var validate = validator.New()

// Validate checks the recurrence specification and the kind payload.
func (o *Obligation) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("obligation %s: %w", o.ID, err)
	}
	if err := o.validatePayload(); err != nil {
		return fmt.Errorf("obligation %s: %w", o.ID, err)
	}

	r := o.Recurrence
	if !r.Frequency.Valid() {
		return fmt.Errorf("obligation %s: unknown frequency %q", o.ID, r.Frequency)
	}
	if r.ContributionCount != nil && r.MonthlyAmount == nil && !o.impliesMonthlyAmount() {
		return fmt.Errorf("obligation %s: contribution count requires a monthly amount", o.ID)
	}
	if r.Installments != nil {
		if o.Kind != KindDebt && o.Kind != KindReceivable {
			return fmt.Errorf("obligation %s: installments are only supported for debts and receivables", o.ID)
		}
		if err := validate.Struct(r.Installments); err != nil {
			return fmt.Errorf("obligation %s: installment count requires a positive installment amount: %w", o.ID, err)
		}
	}
	return nil
}

func (o *Obligation) validatePayload() error {
	set := 0
	for _, present := range []bool{o.Goal != nil, o.Debt != nil, o.Receivable != nil, o.Investment != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("expected exactly one %s payload, found %d", o.Kind, set)
	}

	switch o.Kind {
	case KindGoal:
		if o.Goal == nil {
			return fmt.Errorf("goal payload missing")
		}
		return validate.Struct(o.Goal)
	case KindDebt:
		if o.Debt == nil {
			return fmt.Errorf("debt payload missing")
		}
		return validate.Struct(o.Debt)
	case KindReceivable:
		if o.Receivable == nil {
			return fmt.Errorf("receivable payload missing")
		}
		return validate.Struct(o.Receivable)
	case KindInvestment:
		if o.Investment == nil {
			return fmt.Errorf("investment payload missing")
		}
		return validate.Struct(o.Investment)
	}
	return fmt.Errorf("unknown obligation kind %q", o.Kind)
}

// impliesMonthlyAmount reports whether a goal can derive its monthly amount from a target date.
func (o *Obligation) impliesMonthlyAmount() bool {
	return o.Kind == KindGoal && o.Goal != nil && o.Goal.TargetDate != nil
}

// Status returns the kind-specific status as a plain string.
func (o *Obligation) Status() string {
	switch o.Kind {
	case KindGoal:
		if o.Goal != nil {
			return string(o.Goal.Status)
		}
	case KindDebt:
		if o.Debt != nil {
			return string(o.Debt.Status)
		}
	case KindReceivable:
		if o.Receivable != nil {
			return string(o.Receivable.Status)
		}
	case KindInvestment:
		if o.Investment != nil {
			return string(o.Investment.Status)
		}
	}
	return ""
}

// StatusQualifies reports whether the kind-specific status allows projection.
func (o *Obligation) StatusQualifies() bool {
	switch o.Kind {
	case KindGoal:
		return o.Goal != nil && o.Goal.Status == GoalActive
	case KindDebt:
		return o.Debt != nil && (o.Debt.Status == DebtActive || o.Debt.Status == DebtNegotiated)
	case KindReceivable:
		return o.Receivable != nil && (o.Receivable.Status == ReceivablePending || o.Receivable.Status == ReceivableNegotiated)
	case KindInvestment:
		return o.Investment != nil && o.Investment.Status == InvestmentActive
	}
	return false
}

// Qualifies reports whether the obligation passes the plan gate.
func (o *Obligation) Qualifies() bool {
	return o.IncludeInPlan && o.CategoryID != nil && *o.CategoryID != "" && o.StatusQualifies()
}

// Remaining returns the outstanding balance. bounded is false when the obligation has no ceiling.
func (o *Obligation) Remaining() (remaining int64, bounded bool) {
	switch o.Kind {
	case KindGoal:
		if o.Goal != nil {
			return o.Goal.TargetAmount - o.Goal.CurrentAmount, true
		}
	case KindDebt:
		if o.Debt != nil {
			return o.Debt.TotalAmount - o.Debt.PaidAmount, true
		}
	case KindReceivable:
		if o.Receivable != nil {
			return o.Receivable.TotalAmount - o.Receivable.ReceivedAmount, true
		}
	case KindInvestment:
		if o.Investment != nil && o.Investment.TargetAmount != nil {
			return *o.Investment.TargetAmount - o.Investment.InvestedAmount, true
		}
		return 0, false
	}
	return 0, true
}

// Category returns the category id or the empty string.
func (o *Obligation) Category() string {
	if o.CategoryID == nil {
		return ""
	}
	return *o.CategoryID
}
