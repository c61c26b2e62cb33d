package domain

// Company represents a billable company.
type Company struct {
	Code        string `json:"code" db:"code"` // Primary key, slug of Name (e.g. "apple-inc")
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}
