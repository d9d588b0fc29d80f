package mapping

import (
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
)

// ToModelCustomPlanEntry converts a domain CustomPlanEntry to a model CustomPlanEntry
func ToModelCustomPlanEntry(d domain.CustomPlanEntry) models.CustomPlanEntry {
	return models.CustomPlanEntry{
		EntryID:      d.ID,
		OwnerID:      d.OwnerID,
		ObligationID: d.ObligationID,
		CategoryID:   d.CategoryID,
		Year:         d.Month.Year,
		Month:        int(d.Month.Month),
		Amount:       d.Amount,
		Description:  d.Description,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomPlanEntry converts a model CustomPlanEntry to a domain CustomPlanEntry
func ToDomainCustomPlanEntry(m models.CustomPlanEntry) domain.CustomPlanEntry {
	return domain.CustomPlanEntry{
		ID:           m.EntryID,
		OwnerID:      m.OwnerID,
		ObligationID: m.ObligationID,
		CategoryID:   m.CategoryID,
		Month:        domain.NewYearMonth(m.Year, timeMonth(m.Month)),
		Amount:       m.Amount,
		Description:  m.Description,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustomPlanSlice converts a slice of model entries to domain entries
func ToDomainCustomPlanSlice(ms []models.CustomPlanEntry) []domain.CustomPlanEntry {
	ds := make([]domain.CustomPlanEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustomPlanEntry(m)
	}
	return ds
}
