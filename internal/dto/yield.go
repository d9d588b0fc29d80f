package dto

// GenerateYieldRequest asks for the yield of Month to be recorded.
// AsOf (YYYY-MM-DD) is the date the stored balances are valid for; it defaults to today.
type GenerateYieldRequest struct {
	Month string  `json:"month" binding:"required"`
	AsOf  *string `json:"asOf"`
}

// UpdateActualRequest overrides the actual contribution of a goal month.
type UpdateActualRequest struct {
	ActualAmount *int64 `json:"actualAmount" binding:"required"`
}
