package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	"github.com/flowpro-systems/field_service_app/internal/models"
)

type PgxCalendarEventRepository struct {
	pool *pgxpool.Pool
}

func newPgxCalendarEventRepository(pool *pgxpool.Pool) portsrepo.CalendarEventRepositoryFacade {
	return &PgxCalendarEventRepository{pool: pool}
}

var _ portsrepo.CalendarEventRepositoryFacade = (*PgxCalendarEventRepository)(nil)

// SaveEvent inserts a new calendar event.
func (r *PgxCalendarEventRepository) SaveEvent(ctx context.Context, event domain.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (event_id, title, event_date, customer_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		event.EventID,
		event.Title,
		event.EventDate,
		nullableID(event.CustomerID),
		event.CreatedAt,
		event.CreatedBy,
		event.LastUpdatedAt,
		event.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: event with ID %s already exists", apperrors.ErrDuplicate, event.EventID)
		}
		return fmt.Errorf("failed to save calendar event %s: %w", event.EventID, err)
	}
	return nil
}

// scanEvent scans an event row joined with its optional customer name.
func scanEvent(row pgx.Row) (domain.CalendarEvent, error) {
	var m models.CalendarEvent
	var customerID, customerName sql.NullString
	err := row.Scan(
		&m.EventID,
		&m.Title,
		&m.EventDate,
		&customerID,
		&customerName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	d := domain.CalendarEvent{
		EventID:   m.EventID,
		Title:     m.Title,
		EventDate: m.EventDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if customerID.Valid {
		d.CustomerID = customerID.String
	}
	if customerName.Valid {
		d.CustomerName = customerName.String
	}
	return d, nil
}

const eventColumns = `e.event_id, e.title, e.event_date, e.customer_id, c.name, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by`

// FindEventByID retrieves an event with its customer name resolved.
func (r *PgxCalendarEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.CalendarEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM calendar_events e
		LEFT JOIN customers c ON c.customer_id = e.customer_id
		WHERE e.event_id = $1;
	`
	d, err := scanEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}
	return &d, nil
}

// FindEventsFrom retrieves events on or after the given date in chronological order.
func (r *PgxCalendarEventRepository) FindEventsFrom(ctx context.Context, from time.Time, limit int) ([]domain.CalendarEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT ` + eventColumns + `
		FROM calendar_events e
		LEFT JOIN customers c ON c.customer_id = e.customer_id
		WHERE e.event_date >= $1
		ORDER BY e.event_date
		LIMIT $2;
	`
	rows, err := r.pool.Query(ctx, query, from, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar events: %w", err)
	}
	defer rows.Close()

	events := []domain.CalendarEvent{}
	for rows.Next() {
		d, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return events, nil
}

// DeleteEvent removes a calendar event.
func (r *PgxCalendarEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM calendar_events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
