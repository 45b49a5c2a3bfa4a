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

// jobService implements the JobSvcFacade interface
type jobService struct {
	BaseService
	jobRepo      portsrepo.JobRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

// NewJobService creates a new job service
func NewJobService(jobRepo portsrepo.JobRepositoryFacade, customerRepo portsrepo.CustomerReader) portssvc.JobSvcFacade {
	return &jobService{jobRepo: jobRepo, customerRepo: customerRepo}
}

var _ portssvc.JobSvcFacade = (*jobService)(nil)

// buildLineItems materializes request line items into domain entities.
func buildLineItems(reqs []dto.LineItemRequest, actorID string, now time.Time) []domain.LineItem {
	items := make([]domain.LineItem, len(reqs))
	for i, li := range reqs {
		items[i] = domain.LineItem{
			LineItemID:  uuid.NewString(),
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actorID,
				LastUpdatedAt: now,
				LastUpdatedBy: actorID,
			},
		}
	}
	return items
}

func (s *jobService) CreateJob(ctx context.Context, req dto.CreateJobRequest, creatorUserID string) (*domain.Job, error) {
	// Jobs without a customer are allowed; documents render them as a private client.
	if req.CustomerID != "" {
		if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
			return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, req.CustomerID)
		}
	}

	status := req.Status
	if status == "" {
		status = domain.JobStatusQuote
	}

	now := time.Now()
	job := domain.Job{
		JobID:       uuid.NewString(),
		Title:       req.Title,
		Reference:   req.Reference,
		SiteAddress: req.SiteAddress,
		Status:      status,
		Revenue:     req.Revenue,
		Costs:       req.Costs,
		Notes:       req.Notes,
		DueDate:     req.DueDate,
		CustomerID:  req.CustomerID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
		LineItems: buildLineItems(req.LineItems, creatorUserID, now),
	}

	jobNumber, err := s.jobRepo.SaveJob(ctx, job)
	if err != nil {
		s.LogError(ctx, err, "Failed to create job", slog.String("job_id", job.JobID))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	s.LogInfo(ctx, "Job created", slog.String("job_id", job.JobID), slog.Int64("job_number", jobNumber))
	return s.jobRepo.FindJobByID(ctx, job.JobID)
}

func (s *jobService) GetJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	return s.jobRepo.FindJobByID(ctx, jobID)
}

func (s *jobService) ListJobs(ctx context.Context, params dto.ListJobsParams) ([]domain.Job, error) {
	jobs, err := s.jobRepo.FindJobs(ctx, portsrepo.ListJobsFilter{
		Status:          params.Status,
		IncludeArchived: params.IncludeArchived,
		Limit:           params.Limit,
		Offset:          params.Offset,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list jobs")
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) UpdateJob(ctx context.Context, jobID string, req dto.UpdateJobRequest, requestingUserID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Reference != nil {
		job.Reference = *req.Reference
	}
	if req.SiteAddress != nil {
		job.SiteAddress = *req.SiteAddress
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.Revenue != nil {
		job.Revenue = *req.Revenue
	}
	if req.Costs != nil {
		job.Costs = *req.Costs
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	if req.DueDate != nil {
		job.DueDate = req.DueDate
	}
	if req.CustomerID != nil {
		// An explicit empty string detaches the customer from the job.
		if *req.CustomerID != "" {
			if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
				return nil, fmt.Errorf("%w: customer %s does not exist", apperrors.ErrValidation, *req.CustomerID)
			}
		}
		job.CustomerID = *req.CustomerID
		if *req.CustomerID == "" {
			job.Customer = nil
		}
	}
	if req.Archived != nil {
		job.Archived = *req.Archived
	}

	now := time.Now()
	job.LastUpdatedAt = now
	job.LastUpdatedBy = requestingUserID

	replaceItems := req.LineItems != nil
	if replaceItems {
		job.LineItems = buildLineItems(*req.LineItems, requestingUserID, now)
	}

	if err := s.jobRepo.UpdateJob(ctx, *job, replaceItems); err != nil {
		s.LogError(ctx, err, "Failed to update job", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return s.jobRepo.FindJobByID(ctx, jobID)
}

func (s *jobService) ArchiveJob(ctx context.Context, jobID string, requestingUserID string) error {
	if err := s.jobRepo.SetJobArchived(ctx, jobID, true, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to archive job", slog.String("job_id", jobID))
		return err
	}
	s.LogInfo(ctx, "Job archived", slog.String("job_id", jobID))
	return nil
}
