package dto

import (
	"github.com/SscSPs/money_planner/internal/core/domain"
)

// ProjectionParams are the query parameters of a projection preview.
type ProjectionParams struct {
	StartMonth string `form:"startMonth"`
	EndMonth   string `form:"endMonth"`
}

// ProjectionLineResponse is one planned month.
type ProjectionLineResponse struct {
	Month       string `json:"month"`
	Amount      int64  `json:"amount"`
	Projected   bool   `json:"projected"`
	Description string `json:"description,omitempty"`
}

// ProjectionResponse lists the planned months of one obligation.
type ProjectionResponse struct {
	ObligationID string                   `json:"obligationID"`
	Kind         domain.ObligationKind    `json:"kind"`
	Lines        []ProjectionLineResponse `json:"lines"`
	Total        int64                    `json:"total"`
}

// GenerateBudgetsRequest defines the options of a single-obligation regeneration.
type GenerateBudgetsRequest struct {
	Overwrite          bool    `json:"overwrite"`
	StartMonth         string  `json:"startMonth"`
	EndMonth           string  `json:"endMonth"`
	PreviousCategoryID *string `json:"previousCategoryID"`
}

// RegenerateAllRequest rebuilds every planned obligation of the caller.
type RegenerateAllRequest struct {
	Kind      *string `json:"kind" binding:"omitempty,oneof=goal debt receivable investment"`
	Overwrite bool    `json:"overwrite"`
}

// CustomPlanEntryRequest pins an amount to one month.
type CustomPlanEntryRequest struct {
	Month       string `json:"month" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description"`
}

// ReplaceCustomPlanRequest replaces every custom entry of an obligation. An empty list clears the plan.
type ReplaceCustomPlanRequest struct {
	Entries []CustomPlanEntryRequest `json:"entries" binding:"dive"`
}

// ListBudgetsParams defines parameters for listing the budgets of an obligation.
type ListBudgetsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// BudgetResponse defines the data returned for a budget record.
type BudgetResponse struct {
	BudgetID        string            `json:"budgetID"`
	CategoryID      string            `json:"categoryID"`
	Month           string            `json:"month"`
	PlannedAmount   int64             `json:"plannedAmount"`
	ActualAmount    *int64            `json:"actualAmount,omitempty"`
	SourceType      domain.SourceType `json:"sourceType"`
	SourceID        *string           `json:"sourceID,omitempty"`
	IsAutoGenerated bool              `json:"isAutoGenerated"`
	IsProjected     bool              `json:"isProjected"`
	Description     string            `json:"description,omitempty"`
}

// ListBudgetsResponse is one page of budget records.
type ListBudgetsResponse struct {
	Budgets   []BudgetResponse `json:"budgets"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// ToCustomPlanEntries converts the request entries, parsing their months.
func (r ReplaceCustomPlanRequest) ToCustomPlanEntries() ([]domain.CustomPlanEntry, error) {
	entries := make([]domain.CustomPlanEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		month, err := ParseMonth(e.Month)
		if err != nil {
			return nil, err
		}
		entries = append(entries, domain.CustomPlanEntry{Month: month, Amount: e.Amount, Description: e.Description})
	}
	return entries, nil
}

// ToProjectionResponse converts lines to the response DTO and totals them.
func ToProjectionResponse(kind domain.ObligationKind, obligationID string, lines []domain.ProjectionLine) ProjectionResponse {
	resp := ProjectionResponse{
		ObligationID: obligationID,
		Kind:         kind,
		Lines:        make([]ProjectionLineResponse, len(lines)),
	}
	for i, l := range lines {
		resp.Lines[i] = ProjectionLineResponse{
			Month:       l.Month.String(),
			Amount:      l.Amount,
			Projected:   l.Projected,
			Description: l.Description,
		}
		resp.Total += l.Amount
	}
	return resp
}

// ToBudgetResponse converts a domain.BudgetRecord to BudgetResponse DTO
func ToBudgetResponse(b domain.BudgetRecord) BudgetResponse {
	return BudgetResponse{
		BudgetID:        b.ID,
		CategoryID:      b.CategoryID,
		Month:           b.YearMonth().String(),
		PlannedAmount:   b.PlannedAmount,
		ActualAmount:    b.ActualAmount,
		SourceType:      b.SourceType,
		SourceID:        b.SourceID,
		IsAutoGenerated: b.IsAutoGenerated,
		IsProjected:     b.IsProjected,
		Description:     b.Description,
	}
}

// ToListBudgetsResponse converts a page of records.
func ToListBudgetsResponse(records []domain.BudgetRecord, nextToken *string) ListBudgetsResponse {
	resp := ListBudgetsResponse{Budgets: make([]BudgetResponse, len(records)), NextToken: nextToken}
	for i, r := range records {
		resp.Budgets[i] = ToBudgetResponse(r)
	}
	return resp
}
