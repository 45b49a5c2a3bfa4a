package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

// calendarEventService implements the CalendarEventSvcFacade interface
type calendarEventService struct {
	BaseService
	eventRepo    portsrepo.CalendarEventRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewCalendarEventService creates a new calendar event service
func NewCalendarEventService(eventRepo portsrepo.CalendarEventRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.CalendarEventSvcFacade {
	return &calendarEventService{eventRepo: eventRepo, customerRepo: customerRepo}
}

var _ portssvc.CalendarEventSvcFacade = (*calendarEventService)(nil)

func (s *calendarEventService) CreateEvent(ctx context.Context, req dto.CreateCalendarEventRequest, creatorUserID string) (*domain.CalendarEvent, error) {
	event := domain.CalendarEvent{
		EventID:   uuid.NewString(),
		Title:     req.Title,
		EventDate: req.EventDate,
	}

	if req.CustomerID != "" {
		customer, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
		event.CustomerID = customer.CustomerID
		event.CustomerName = customer.Name
	}

	now := time.Now()
	event.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to create calendar event", slog.String("event_id", event.EventID))
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return &event, nil
}

func (s *calendarEventService) ListEventsFrom(ctx context.Context, from time.Time, limit int) ([]domain.CalendarEvent, error) {
	events, err := s.eventRepo.FindEventsFrom(ctx, from, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list calendar events")
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

func (s *calendarEventService) DeleteEvent(ctx context.Context, eventID string, requestingUserID string) error {
	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		s.LogError(ctx, err, "Failed to delete calendar event", slog.String("event_id", eventID))
		return err
	}
	s.LogInfo(ctx, "Calendar event deleted", slog.String("event_id", eventID), slog.String("deleted_by", requestingUserID))
	return nil
}
