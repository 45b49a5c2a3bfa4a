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

// jobNumberCounter is the counters row that feeds sequential job numbers.
const jobNumberCounter = "job_number"

type PgxJobRepository struct {
	BaseRepository
}

func newPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

func toModelJob(d domain.Job) models.Job {
	return models.Job{
		JobID:       d.JobID,
		JobNumber:   d.JobNumber,
		Title:       d.Title,
		Reference:   d.Reference,
		SiteAddress: d.SiteAddress,
		Status:      models.JobStatus(d.Status),
		Revenue:     d.Revenue,
		Costs:       d.Costs,
		Notes:       d.Notes,
		DueDate:     d.DueDate,
		CustomerID:  d.CustomerID,
		Archived:    d.Archived,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:       m.JobID,
		JobNumber:   m.JobNumber,
		Title:       m.Title,
		Reference:   m.Reference,
		SiteAddress: m.SiteAddress,
		Status:      domain.JobStatus(m.Status),
		Revenue:     m.Revenue,
		Costs:       m.Costs,
		Notes:       m.Notes,
		DueDate:     m.DueDate,
		CustomerID:  m.CustomerID,
		Archived:    m.Archived,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func toDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:  m.LineItemID,
		JobID:       m.JobID,
		Description: m.Description,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// nullableID maps an empty foreign key to NULL.
func nullableID(id string) sql.NullString {
	if id == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: id, Valid: true}
}

// SaveJob inserts a job and its line items in one transaction. The job number
// comes from the counters row, locked for the duration of the insert so
// concurrent creates never share a number.
func (r *PgxJobRepository) SaveJob(ctx context.Context, job domain.Job) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	var jobNumber int64
	err = tx.QueryRow(ctx, `
		UPDATE counters SET next_value = next_value + 1
		WHERE name = $1
		RETURNING next_value - 1;
	`, jobNumberCounter).Scan(&jobNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("counter %s is not seeded: %w", jobNumberCounter, err)
		}
		return 0, fmt.Errorf("failed to allocate job number: %w", err)
	}

	m := toModelJob(job)
	m.JobNumber = jobNumber

	_, err = tx.Exec(ctx, `
		INSERT INTO jobs (job_id, job_number, title, reference, site_address, status, revenue, costs, notes, due_date, customer_id, archived, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`,
		m.JobID,
		m.JobNumber,
		m.Title,
		m.Reference,
		m.SiteAddress,
		m.Status,
		m.Revenue,
		m.Costs,
		m.Notes,
		m.DueDate,
		nullableID(m.CustomerID),
		m.Archived,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: job with ID %s already exists", apperrors.ErrDuplicate, m.JobID)
		}
		return 0, fmt.Errorf("failed to save job %s: %w", m.JobID, err)
	}

	if err := insertLineItems(ctx, tx, m.JobID, job.LineItems); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return jobNumber, nil
}

// insertLineItems writes the given items for a job, keeping request order.
func insertLineItems(ctx context.Context, tx pgx.Tx, jobID string, items []domain.LineItem) error {
	for i, item := range items {
		_, err := tx.Exec(ctx, `
			INSERT INTO line_items (line_item_id, job_id, position, description, quantity, unit_price, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`,
			item.LineItemID,
			jobID,
			i,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			item.CreatedAt,
			item.CreatedBy,
			item.LastUpdatedAt,
			item.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save line item %s for job %s: %w", item.LineItemID, jobID, err)
		}
	}
	return nil
}

const jobColumns = `j.job_id, j.job_number, j.title, j.reference, j.site_address, j.status, j.revenue, j.costs, j.notes, j.due_date, j.customer_id, j.archived, j.created_at, j.created_by, j.last_updated_at, j.last_updated_by`

// scanJob scans one jobs row, mapping the nullable customer FK.
func scanJob(row pgx.Row) (models.Job, error) {
	var m models.Job
	var customerID sql.NullString
	err := row.Scan(
		&m.JobID,
		&m.JobNumber,
		&m.Title,
		&m.Reference,
		&m.SiteAddress,
		&m.Status,
		&m.Revenue,
		&m.Costs,
		&m.Notes,
		&m.DueDate,
		&customerID,
		&m.Archived,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.Job{}, err
	}
	if customerID.Valid {
		m.CustomerID = customerID.String
	}
	return m, nil
}

// FindJobByID retrieves a job with its customer and line items resolved.
func (r *PgxJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE j.job_id = $1;`

	m, err := scanJob(r.Pool.QueryRow(ctx, query, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by ID %s: %w", jobID, err)
	}

	job := toDomainJob(m)
	if err := r.attachRelations(ctx, []*domain.Job{&job}); err != nil {
		return nil, err
	}
	return &job, nil
}

// FindJobs retrieves jobs matching the filter, newest first.
func (r *PgxJobRepository) FindJobs(ctx context.Context, filter portsrepo.ListJobsFilter) ([]domain.Job, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + jobColumns + ` FROM jobs j WHERE 1=1`
	args := []any{}
	if !filter.IncludeArchived {
		query += ` AND j.archived = FALSE`
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND j.status = $%d`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d;`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		m, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, toDomainJob(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}

	refs := make([]*domain.Job, len(jobs))
	for i := range jobs {
		refs[i] = &jobs[i]
	}
	if err := r.attachRelations(ctx, refs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// attachRelations batch-loads customers and line items for the given jobs.
func (r *PgxJobRepository) attachRelations(ctx context.Context, jobs []*domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	jobIDs := make([]string, 0, len(jobs))
	customerIDs := make([]string, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.JobID)
		if j.CustomerID != "" {
			customerIDs = append(customerIDs, j.CustomerID)
		}
	}

	customers := map[string]domain.Customer{}
	if len(customerIDs) > 0 {
		rows, err := r.Pool.Query(ctx, `
			SELECT customer_id, name, phone, email, address, created_at, created_by, last_updated_at, last_updated_by
			FROM customers
			WHERE customer_id = ANY($1);
		`, customerIDs)
		if err != nil {
			return fmt.Errorf("failed to query job customers: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var m models.Customer
			if err := rows.Scan(&m.CustomerID, &m.Name, &m.Phone, &m.Email, &m.Address, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
				return fmt.Errorf("failed to scan job customer row: %w", err)
			}
			customers[m.CustomerID] = toDomainCustomer(m)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("error iterating job customer rows: %w", err)
		}
	}

	itemsByJob := map[string][]domain.LineItem{}
	rows, err := r.Pool.Query(ctx, `
		SELECT line_item_id, job_id, description, quantity, unit_price, created_at, created_by, last_updated_at, last_updated_by
		FROM line_items
		WHERE job_id = ANY($1)
		ORDER BY job_id, position;
	`, jobIDs)
	if err != nil {
		return fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(&m.LineItemID, &m.JobID, &m.Description, &m.Quantity, &m.UnitPrice, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return fmt.Errorf("failed to scan line item row: %w", err)
		}
		itemsByJob[m.JobID] = append(itemsByJob[m.JobID], toDomainLineItem(m))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating line item rows: %w", err)
	}

	for _, j := range jobs {
		if c, ok := customers[j.CustomerID]; ok {
			cc := c
			j.Customer = &cc
		}
		j.LineItems = itemsByJob[j.JobID]
	}
	return nil
}

// UpdateJob updates a job, optionally replacing its line items.
func (r *PgxJobRepository) UpdateJob(ctx context.Context, job domain.Job, replaceItems bool) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := toModelJob(job)
	tag, err := tx.Exec(ctx, `
		UPDATE jobs
		SET title = $2, reference = $3, site_address = $4, status = $5, revenue = $6, costs = $7, notes = $8, due_date = $9, customer_id = $10, archived = $11, last_updated_at = $12, last_updated_by = $13
		WHERE job_id = $1;
	`,
		m.JobID,
		m.Title,
		m.Reference,
		m.SiteAddress,
		m.Status,
		m.Revenue,
		m.Costs,
		m.Notes,
		m.DueDate,
		nullableID(m.CustomerID),
		m.Archived,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update job %s: %w", m.JobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if replaceItems {
		if _, err := tx.Exec(ctx, `DELETE FROM line_items WHERE job_id = $1;`, m.JobID); err != nil {
			return fmt.Errorf("failed to clear line items for job %s: %w", m.JobID, err)
		}
		if err := insertLineItems(ctx, tx, m.JobID, job.LineItems); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// SetJobArchived flips the archived flag without touching other fields.
func (r *PgxJobRepository) SetJobArchived(ctx context.Context, jobID string, archived bool, updatedBy string, updatedAt time.Time) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE jobs SET archived = $2, last_updated_at = $3, last_updated_by = $4
		WHERE job_id = $1;
	`, jobID, archived, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set archived for job %s: %w", jobID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
