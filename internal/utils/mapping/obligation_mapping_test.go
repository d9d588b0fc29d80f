package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
	"github.com/SscSPs/money_planner/internal/utils/mapping"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObligationMapping_DebtWithInstallments(t *testing.T) {
	cat := "cat-loans"
	debt := domain.Obligation{
		ID:            "debt-1",
		OwnerID:       "owner-1",
		Name:          "Car loan",
		Kind:          domain.KindDebt,
		CategoryID:    &cat,
		IncludeInPlan: true,
		Recurrence: domain.Recurrence{
			Installments: &domain.InstallmentPlan{Amount: 10000, Count: 3, DayOfMonth: 31},
		},
		Debt: &domain.DebtTerms{Status: domain.DebtNegotiated, TotalAmount: 25000, PaidAmount: 0},
	}

	row := mapping.ToModelObligation(debt)
	assert.Equal(t, "negotiated", row.Status)
	assert.Equal(t, "monthly", row.Frequency)
	require.NotNil(t, row.TargetAmount)
	assert.Equal(t, int64(25000), *row.TargetAmount)
	require.NotNil(t, row.InstallmentDay)
	assert.Equal(t, 31, *row.InstallmentDay)

	back, err := mapping.ToDomainObligation(row)
	require.NoError(t, err)
	require.NotNil(t, back.Debt)
	assert.Nil(t, back.Goal)
	assert.Equal(t, *debt.Debt, *back.Debt)
	assert.Equal(t, *debt.Recurrence.Installments, *back.Recurrence.Installments)
	assert.NoError(t, back.Validate())
}

func TestObligationMapping_InvestmentWithoutTarget(t *testing.T) {
	row := models.Obligation{
		ObligationID:   "inv-1",
		OwnerID:        "owner-1",
		Kind:           "investment",
		Status:         "active",
		Frequency:      "quarterly",
		ProgressAmount: 5000,
	}

	inv, err := mapping.ToDomainObligation(row)
	require.NoError(t, err)
	require.NotNil(t, inv.Investment)
	assert.Nil(t, inv.Investment.TargetAmount)

	_, bounded := inv.Remaining()
	assert.False(t, bounded)
}

func TestObligationMapping_GoalDatesAreDateOnly(t *testing.T) {
	target := time.Date(2024, time.July, 1, 15, 4, 5, 0, time.FixedZone("X", 3600))
	amount := int64(120000)
	row := models.Obligation{
		ObligationID: "goal-1",
		OwnerID:      "owner-1",
		Kind:         "goal",
		Status:       "active",
		TargetAmount: &amount,
		TargetDate:   &target,
	}

	goal, err := mapping.ToDomainObligation(row)
	require.NoError(t, err)
	require.NotNil(t, goal.Goal.TargetDate)
	assert.Equal(t, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), *goal.Goal.TargetDate)
}

func TestObligationMapping_UnknownKind(t *testing.T) {
	_, err := mapping.ToDomainObligation(models.Obligation{ObligationID: "x", Kind: "loan"})
	assert.Error(t, err)
}

func TestBudgetMapping_DefaultsAndMetadata(t *testing.T) {
	rec := domain.BudgetRecord{
		ID:         "b-1",
		OwnerID:    "owner-1",
		CategoryID: "cat-1",
		Year:       2024,
		Month:      time.May,
		Metadata:   []byte(`{"total":10}`),
	}

	row := mapping.ToModelBudget(rec)
	assert.Equal(t, "manual", row.SourceType)
	assert.Equal(t, 5, row.Month)

	back := mapping.ToDomainBudget(row)
	assert.Equal(t, domain.YearMonth{Year: 2024, Month: time.May}, back.YearMonth())
	assert.JSONEq(t, `{"total":10}`, string(back.Metadata))

	assert.Nil(t, mapping.ToModelBudget(domain.BudgetRecord{}).Metadata)
}
