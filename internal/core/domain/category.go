package domain

// CategoryKind separates income from expense categories.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Category groups budget records.
type Category struct {
	ID      string       `json:"id"`
	OwnerID string       `json:"ownerID"`
	Name    string       `json:"name"`
	Kind    CategoryKind `json:"kind"`
	AuditFields
}
