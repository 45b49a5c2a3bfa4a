package services

import (
	"context"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

// JobReaderSvc defines read operations for job data
type JobReaderSvc interface {
	// GetJobByID retrieves a job with its customer and line items.
	GetJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// ListJobs retrieves jobs matching the query parameters.
	ListJobs(ctx context.Context, params dto.ListJobsParams) ([]domain.Job, error)
}

// JobWriterSvc defines write operations for job data
type JobWriterSvc interface {
	// CreateJob creates a new job and allocates its job number.
	CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error)

	// UpdateJob applies the provided partial update.
	UpdateJob(ctx context.Context, jobID string, req dto.UpdateJobRequest, requestingUserID string) (*domain.Job, error)

	// ArchiveJob archives a job so it drops out of listings and reporting.
	ArchiveJob(ctx context.Context, jobID string, requestingUserID string) error
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
}
