package services

import (
	"context"
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

// CalendarEventSvcFacade defines operations for scheduling.
type CalendarEventSvcFacade interface {
	// CreateEvent creates a new calendar event, validating any customer link.
	CreateEvent(ctx context.Context, req dto.CreateCalendarEventRequest, creatorUserID string) (*domain.CalendarEvent, error)

	// ListEventsFrom retrieves events on or after the given date.
	ListEventsFrom(ctx context.Context, from time.Time, limit int) ([]domain.CalendarEvent, error)

	// DeleteEvent removes a calendar event.
	DeleteEvent(ctx context.Context, eventID string, requestingUserID string) error
}
