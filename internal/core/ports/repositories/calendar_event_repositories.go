package repositories

import (
	"context"
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// CalendarEventReader defines read operations for calendar event data
type CalendarEventReader interface {
	// FindEventByID retrieves a specific event by ID.
	FindEventByID(ctx context.Context, eventID string) (*domain.CalendarEvent, error)

	// FindEventsFrom retrieves events on or after the given date in
	// chronological order, with the customer name resolved.
	FindEventsFrom(ctx context.Context, from time.Time, limit int) ([]domain.CalendarEvent, error)
}

// CalendarEventWriter defines write operations for calendar event data
type CalendarEventWriter interface {
	// SaveEvent persists a new calendar event.
	SaveEvent(ctx context.Context, event domain.CalendarEvent) error

	// DeleteEvent removes a calendar event.
	DeleteEvent(ctx context.Context, eventID string) error
}

// CalendarEventRepositoryFacade combines all calendar-event repository interfaces
type CalendarEventRepositoryFacade interface {
	CalendarEventReader
	CalendarEventWriter
}
