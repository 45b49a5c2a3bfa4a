package dto

import (
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// CreateCalendarEventRequest defines the data needed to create a calendar event.
type CreateCalendarEventRequest struct {
	Title      string    `json:"title" binding:"required"`
	EventDate  time.Time `json:"eventDate" binding:"required"`
	CustomerID string    `json:"customerID"`
}

// CalendarEventResponse defines the data returned for a calendar event.
// CustomerName is resolved from the linked customer when one is set.
type CalendarEventResponse struct {
	EventID       string    `json:"eventID"`
	Title         string    `json:"title"`
	EventDate     time.Time `json:"eventDate"`
	CustomerID    string    `json:"customerID,omitempty"`
	CustomerName  string    `json:"customerName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToCalendarEventResponse converts a domain.CalendarEvent to CalendarEventResponse DTO
func ToCalendarEventResponse(e *domain.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		EventID:       e.EventID,
		Title:         e.Title,
		EventDate:     e.EventDate,
		CustomerID:    e.CustomerID,
		CustomerName:  e.CustomerName,
		CreatedAt:     e.CreatedAt,
		CreatedBy:     e.CreatedBy,
		LastUpdatedAt: e.LastUpdatedAt,
		LastUpdatedBy: e.LastUpdatedBy,
	}
}

// ListCalendarEventsParams defines query parameters for listing calendar events.
type ListCalendarEventsParams struct {
	From  *time.Time `form:"from" time_format:"2006-01-02"`
	Limit int        `form:"limit,default=100"`
}

// ListCalendarEventsResponse wraps the list of calendar events.
type ListCalendarEventsResponse struct {
	Events []CalendarEventResponse `json:"events"`
}

// ToListCalendarEventsResponse converts a slice of domain.CalendarEvent to ListCalendarEventsResponse DTO
func ToListCalendarEventsResponse(events []domain.CalendarEvent) ListCalendarEventsResponse {
	res := make([]CalendarEventResponse, len(events))
	for i, e := range events {
		res[i] = ToCalendarEventResponse(&e)
	}
	return ListCalendarEventsResponse{Events: res}
}
