package domain

// Customer represents a client of the business.
// Only the name is mandatory; contact details are best-effort data entered by
// the office and may be blank.
type Customer struct {
	CustomerID string `json:"customerID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	AuditFields
}
