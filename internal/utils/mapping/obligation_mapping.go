package mapping

import (
	"fmt"
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
)

func timeMonth(m int) time.Month { return time.Month(m) }

// ToModelObligation flattens a domain Obligation into its single-table row.
func ToModelObligation(d domain.Obligation) models.Obligation {
	m := models.Obligation{
		ObligationID:      d.ID,
		OwnerID:           d.OwnerID,
		Name:              d.Name,
		Kind:              string(d.Kind),
		CategoryID:        d.CategoryID,
		IncludeInPlan:     d.IncludeInPlan,
		Status:            d.Status(),
		Frequency:         string(d.Recurrence.Frequency),
		MonthlyAmount:     d.Recurrence.MonthlyAmount,
		StartDate:         d.Recurrence.StartDate,
		ContributionCount: d.Recurrence.ContributionCount,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if m.Frequency == "" {
		m.Frequency = string(domain.FrequencyMonthly)
	}
	if ip := d.Recurrence.Installments; ip != nil {
		amount, count, day := ip.Amount, ip.Count, ip.DayOfMonth
		m.InstallmentAmount, m.InstallmentCount, m.InstallmentDay = &amount, &count, &day
	}

	switch {
	case d.Goal != nil:
		target := d.Goal.TargetAmount
		m.TargetAmount = &target
		m.ProgressAmount = d.Goal.CurrentAmount
		m.TargetDate = d.Goal.TargetDate
	case d.Debt != nil:
		total := d.Debt.TotalAmount
		m.TargetAmount = &total
		m.ProgressAmount = d.Debt.PaidAmount
	case d.Receivable != nil:
		total := d.Receivable.TotalAmount
		m.TargetAmount = &total
		m.ProgressAmount = d.Receivable.ReceivedAmount
	case d.Investment != nil:
		m.TargetAmount = d.Investment.TargetAmount
		m.ProgressAmount = d.Investment.InvestedAmount
	}
	return m
}

// ToDomainObligation rebuilds the kind payload from a row.
func ToDomainObligation(m models.Obligation) (domain.Obligation, error) {
	kind, err := domain.ParseObligationKind(m.Kind)
	if err != nil {
		return domain.Obligation{}, fmt.Errorf("obligation %s: %w", m.ObligationID, err)
	}

	d := domain.Obligation{
		ID:            m.ObligationID,
		OwnerID:       m.OwnerID,
		Name:          m.Name,
		Kind:          kind,
		CategoryID:    m.CategoryID,
		IncludeInPlan: m.IncludeInPlan,
		Recurrence: domain.Recurrence{
			Frequency:         domain.Frequency(m.Frequency),
			MonthlyAmount:     m.MonthlyAmount,
			StartDate:         dateOnlyPtr(m.StartDate),
			ContributionCount: m.ContributionCount,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.InstallmentAmount != nil && m.InstallmentCount != nil && m.InstallmentDay != nil {
		d.Recurrence.Installments = &domain.InstallmentPlan{
			Amount:     *m.InstallmentAmount,
			Count:      *m.InstallmentCount,
			DayOfMonth: *m.InstallmentDay,
		}
	}

	var target int64
	if m.TargetAmount != nil {
		target = *m.TargetAmount
	}
	switch kind {
	case domain.KindGoal:
		d.Goal = &domain.GoalTerms{
			Status:        domain.GoalStatus(m.Status),
			TargetAmount:  target,
			CurrentAmount: m.ProgressAmount,
			TargetDate:    dateOnlyPtr(m.TargetDate),
		}
	case domain.KindDebt:
		d.Debt = &domain.DebtTerms{
			Status:      domain.DebtStatus(m.Status),
			TotalAmount: target,
			PaidAmount:  m.ProgressAmount,
		}
	case domain.KindReceivable:
		d.Receivable = &domain.ReceivableTerms{
			Status:         domain.ReceivableStatus(m.Status),
			TotalAmount:    target,
			ReceivedAmount: m.ProgressAmount,
		}
	case domain.KindInvestment:
		d.Investment = &domain.InvestmentTerms{
			Status:         domain.InvestmentStatus(m.Status),
			TargetAmount:   m.TargetAmount,
			InvestedAmount: m.ProgressAmount,
		}
	}
	return d, nil
}

// ToDomainObligationSlice converts rows, failing on the first unknown kind.
func ToDomainObligationSlice(ms []models.Obligation) ([]domain.Obligation, error) {
	ds := make([]domain.Obligation, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainObligation(m)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := domain.DateOnly(*t)
	return &d
}
