package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
	"github.com/flowpro-systems/field_service_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// calendarEventHandler handles HTTP requests for the scheduling calendar.
type calendarEventHandler struct {
	eventService portssvc.CalendarEventSvcFacade
}

func newCalendarEventHandler(es portssvc.CalendarEventSvcFacade) *calendarEventHandler {
	return &calendarEventHandler{
		eventService: es,
	}
}

// registerCalendarEventRoutes registers all calendar-related routes.
func registerCalendarEventRoutes(rg *gin.RouterGroup, eventService portssvc.CalendarEventSvcFacade) {
	h := newCalendarEventHandler(eventService)

	events := rg.Group("/calendar-events")
	{
		events.POST("", h.createEvent)
		events.GET("", h.listEvents)
		events.DELETE("/:id", h.deleteEvent)
	}
}

// createEvent godoc
// @Summary Create a calendar event
// @Description Schedules an event, optionally linked to a customer
// @Tags calendar
// @Accept  json
// @Produce  json
// @Param   event body dto.CreateCalendarEventRequest true "Event details"
// @Success 201 {object} dto.CalendarEventResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown customer"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create event"
// @Security BearerAuth
// @Router /calendar-events [post]
func (h *calendarEventHandler) createEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCalendarEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create calendar event in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCalendarEventResponse(event))
}

// listEvents godoc
// @Summary List upcoming calendar events
// @Description Retrieves events on or after the given date, today by default
// @Tags calendar
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD)" default(current date)
// @Param   limit query int false "Limit number of results" default(100)
// @Success 200 {object} dto.ListCalendarEventsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list events"
// @Security BearerAuth
// @Router /calendar-events [get]
func (h *calendarEventHandler) listEvents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCalendarEventsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from := time.Now().Truncate(24 * time.Hour)
	if params.From != nil {
		from = *params.From
	}

	events, err := h.eventService.ListEventsFrom(c.Request.Context(), from, params.Limit)
	if err != nil {
		logger.Error("Failed to list calendar events from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list events"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCalendarEventsResponse(events))
}

// deleteEvent godoc
// @Summary Delete a calendar event
// @Description Removes a scheduled event
// @Tags calendar
// @Produce  json
// @Param   id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Event not found"
// @Failure 500 {object} map[string]string "Failed to delete event"
// @Security BearerAuth
// @Router /calendar-events/{id} [delete]
func (h *calendarEventHandler) deleteEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.eventService.DeleteEvent(c.Request.Context(), eventID, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		} else {
			logger.Error("Failed to delete calendar event in service", slog.String("error", err.Error()), slog.String("event_id", eventID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete event"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
