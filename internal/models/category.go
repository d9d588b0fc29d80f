package models

// Category is a budget category row.
type Category struct {
	CategoryID string `db:"category_id"`
	OwnerID    string `db:"owner_id"`
	Name       string `db:"name"`
	Kind       string `db:"kind"`
	AuditFields
}
