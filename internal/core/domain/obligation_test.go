package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string { return &s }
func int64Ptr(v int64) *int64    { return &v }
func intPtr(v int) *int          { return &v }

func validGoal() domain.Obligation {
	return domain.Obligation{
		ID:            "goal-1",
		OwnerID:       "owner-1",
		Kind:          domain.KindGoal,
		CategoryID:    stringPtr("cat-1"),
		IncludeInPlan: true,
		Recurrence:    domain.Recurrence{Frequency: domain.FrequencyMonthly, MonthlyAmount: int64Ptr(5000)},
		Goal:          &domain.GoalTerms{Status: domain.GoalActive, TargetAmount: 100000, CurrentAmount: 20000},
	}
}

func TestObligation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *domain.Obligation)
		wantErr bool
	}{
		{"valid goal", func(o *domain.Obligation) {}, false},
		{"missing payload", func(o *domain.Obligation) { o.Goal = nil }, true},
		{"two payloads", func(o *domain.Obligation) {
			o.Debt = &domain.DebtTerms{Status: domain.DebtActive, TotalAmount: 100}
		}, true},
		{"payload does not match kind", func(o *domain.Obligation) {
			o.Goal = nil
			o.Debt = &domain.DebtTerms{Status: domain.DebtActive, TotalAmount: 100}
		}, true},
		{"unknown frequency", func(o *domain.Obligation) { o.Recurrence.Frequency = "fortnightly" }, true},
		{"unknown status", func(o *domain.Obligation) { o.Goal.Status = "sold" }, true},
		{"installments on a goal", func(o *domain.Obligation) {
			o.Recurrence.Installments = &domain.InstallmentPlan{Amount: 100, Count: 2, DayOfMonth: 5}
		}, true},
		{"count without amount", func(o *domain.Obligation) {
			o.Recurrence.MonthlyAmount = nil
			o.Recurrence.ContributionCount = intPtr(3)
		}, true},
		{"count with implied amount", func(o *domain.Obligation) {
			o.Recurrence.MonthlyAmount = nil
			o.Recurrence.ContributionCount = intPtr(3)
			target := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
			o.Goal.TargetDate = &target
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validGoal()
			tt.mutate(&o)
			err := o.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestObligation_DebtInstallmentsRequireAmount(t *testing.T) {
	o := domain.Obligation{
		ID:            "debt-1",
		OwnerID:       "owner-1",
		Kind:          domain.KindDebt,
		IncludeInPlan: true,
		Recurrence:    domain.Recurrence{Installments: &domain.InstallmentPlan{Count: 3, DayOfMonth: 15}},
		Debt:          &domain.DebtTerms{Status: domain.DebtNegotiated, TotalAmount: 30000},
	}
	assert.Error(t, o.Validate())

	o.Recurrence.Installments.Amount = 10000
	assert.NoError(t, o.Validate())
}

func TestObligation_StatusQualifies(t *testing.T) {
	tests := []struct {
		name string
		o    domain.Obligation
		want bool
	}{
		{"active goal", domain.Obligation{Kind: domain.KindGoal, Goal: &domain.GoalTerms{Status: domain.GoalActive}}, true},
		{"paused goal", domain.Obligation{Kind: domain.KindGoal, Goal: &domain.GoalTerms{Status: domain.GoalPaused}}, false},
		{"negotiated debt", domain.Obligation{Kind: domain.KindDebt, Debt: &domain.DebtTerms{Status: domain.DebtNegotiated}}, true},
		{"settled debt", domain.Obligation{Kind: domain.KindDebt, Debt: &domain.DebtTerms{Status: domain.DebtSettled}}, false},
		{"pending receivable", domain.Obligation{Kind: domain.KindReceivable, Receivable: &domain.ReceivableTerms{Status: domain.ReceivablePending}}, true},
		{"received receivable", domain.Obligation{Kind: domain.KindReceivable, Receivable: &domain.ReceivableTerms{Status: domain.ReceivableReceived}}, false},
		{"active investment", domain.Obligation{Kind: domain.KindInvestment, Investment: &domain.InvestmentTerms{Status: domain.InvestmentActive}}, true},
		{"sold investment", domain.Obligation{Kind: domain.KindInvestment, Investment: &domain.InvestmentTerms{Status: domain.InvestmentSold}}, false},
		{"matured investment", domain.Obligation{Kind: domain.KindInvestment, Investment: &domain.InvestmentTerms{Status: domain.InvestmentMatured}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.o.StatusQualifies())
		})
	}
}

func TestObligation_Qualifies(t *testing.T) {
	o := validGoal()
	assert.True(t, o.Qualifies())

	o.IncludeInPlan = false
	assert.False(t, o.Qualifies())

	o = validGoal()
	o.CategoryID = nil
	assert.False(t, o.Qualifies())
}

func TestObligation_Remaining(t *testing.T) {
	goal := validGoal()
	rem, bounded := goal.Remaining()
	assert.True(t, bounded)
	assert.Equal(t, int64(80000), rem)

	inv := domain.Obligation{Kind: domain.KindInvestment, Investment: &domain.InvestmentTerms{Status: domain.InvestmentActive, InvestedAmount: 500}}
	_, bounded = inv.Remaining()
	assert.False(t, bounded)

	inv.Investment.TargetAmount = int64Ptr(1500)
	rem, bounded = inv.Remaining()
	assert.True(t, bounded)
	assert.Equal(t, int64(1000), rem)
}
