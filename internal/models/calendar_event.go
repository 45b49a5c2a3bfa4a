package models

import "time"

// CalendarEvent represents a row in the calendar_events table.
type CalendarEvent struct {
	EventID    string    `db:"event_id"`
	Title      string    `db:"title"`
	EventDate  time.Time `db:"event_date"`
	CustomerID string    `db:"customer_id"` // Nullable
	AuditFields
}
