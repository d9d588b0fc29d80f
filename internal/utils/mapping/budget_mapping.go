package mapping

import (
	"time"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
)

// ToModelBudget converts a domain BudgetRecord to a model Budget
func ToModelBudget(d domain.BudgetRecord) models.Budget {
	m := models.Budget{
		BudgetID:        d.ID,
		OwnerID:         d.OwnerID,
		CategoryID:      d.CategoryID,
		Year:            d.Year,
		Month:           int(d.Month),
		PlannedAmount:   d.PlannedAmount,
		ActualAmount:    d.ActualAmount,
		SourceType:      string(d.SourceType),
		SourceID:        d.SourceID,
		IsAutoGenerated: d.IsAutoGenerated,
		IsProjected:     d.IsProjected,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if len(d.Metadata) > 0 {
		m.Metadata = []byte(d.Metadata)
	}
	if m.SourceType == "" {
		m.SourceType = string(domain.SourceManual)
	}
	return m
}

// ToDomainBudget converts a model Budget to a domain BudgetRecord
func ToDomainBudget(m models.Budget) domain.BudgetRecord {
	d := domain.BudgetRecord{
		ID:              m.BudgetID,
		OwnerID:         m.OwnerID,
		CategoryID:      m.CategoryID,
		Year:            m.Year,
		Month:           time.Month(m.Month),
		PlannedAmount:   m.PlannedAmount,
		ActualAmount:    m.ActualAmount,
		SourceType:      domain.SourceType(m.SourceType),
		SourceID:        m.SourceID,
		IsAutoGenerated: m.IsAutoGenerated,
		IsProjected:     m.IsProjected,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if len(m.Metadata) > 0 {
		d.Metadata = append([]byte(nil), m.Metadata...)
	}
	return d
}

// ToDomainBudgetSlice converts a slice of model Budgets to a slice of domain BudgetRecords
func ToDomainBudgetSlice(ms []models.Budget) []domain.BudgetRecord {
	ds := make([]domain.BudgetRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudget(m)
	}
	return ds
}
