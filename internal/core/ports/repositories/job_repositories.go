package repositories

import (
	"context"
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// ListJobsFilter narrows the result of FindJobs.
type ListJobsFilter struct {
	Status          string // empty means all statuses
	IncludeArchived bool
	Limit           int
	Offset          int
}

// JobReader defines read operations for job data
type JobReader interface {
	// FindJobByID retrieves a job with its customer and line items resolved.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// FindJobs retrieves jobs matching the filter, newest first, with
	// customers and line items resolved.
	FindJobs(ctx context.Context, filter ListJobsFilter) ([]domain.Job, error)
}

// JobWriter defines write operations for job data
type JobWriter interface {
	// SaveJob persists a new job and its line items in one transaction and
	// returns the job number allocated from the counter.
	SaveJob(ctx context.Context, job domain.Job) (int64, error)

	// UpdateJob updates a job. When replaceItems is true the stored line
	// items are replaced with job.LineItems in the same transaction.
	UpdateJob(ctx context.Context, job domain.Job, replaceItems bool) error

	// SetJobArchived flips the archived flag without touching other fields.
	SetJobArchived(ctx context.Context, jobID string, archived bool, updatedBy string, updatedAt time.Time) error
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
}
