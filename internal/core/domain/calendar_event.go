package domain

import "time"

// CalendarEvent is a scheduled entry, optionally linked to a customer.
type CalendarEvent struct {
	EventID    string    `json:"eventID"` // Primary Key (e.g., UUID)
	Title      string    `json:"title"`
	EventDate  time.Time `json:"eventDate"`
	CustomerID string    `json:"customerID"` // Nullable FK -> customers.customer_id
	AuditFields

	// CustomerName is the resolved client name, empty for general events.
	CustomerName string `json:"customerName,omitempty"`
}
