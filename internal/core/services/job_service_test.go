package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/core/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

type JobServiceTestSuite struct {
	suite.Suite
	jobRepo      *MockJobRepository
	customerRepo *MockCustomerRepository
	service      portssvc.JobSvcFacade
	ctx          context.Context
}

func (s *JobServiceTestSuite) SetupTest() {
	s.jobRepo = new(MockJobRepository)
	s.customerRepo = new(MockCustomerRepository)
	s.service = services.NewJobService(s.jobRepo, s.customerRepo)
	s.ctx = context.Background()
}

func TestJobServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobServiceTestSuite))
}

func (s *JobServiceTestSuite) TestCreateJobAllocatesNumberAndDefaultsStatus() {
	customer := &domain.Customer{CustomerID: "cust-1", Name: "Acme"}
	s.customerRepo.On("FindCustomerByID", s.ctx, "cust-1").Return(customer, nil)

	var savedJob domain.Job
	s.jobRepo.On("SaveJob", s.ctx, mock.AnythingOfType("domain.Job")).
		Run(func(args mock.Arguments) { savedJob = args.Get(1).(domain.Job) }).
		Return(int64(1000), nil)
	s.jobRepo.On("FindJobByID", s.ctx, mock.AnythingOfType("string")).
		Return(&domain.Job{JobID: "whatever", JobNumber: 1000, Status: domain.JobStatusQuote}, nil)

	req := dto.CreateJobRequest{
		Title:      "Replace hot water system",
		CustomerID: "cust-1",
		Revenue:    decimal.NewFromInt(1800),
		LineItems: []dto.LineItemRequest{
			{Description: "Valve", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(100)},
		},
	}

	job, err := s.service.CreateJob(s.ctx, req, "user-1")

	s.NoError(err)
	s.NotNil(job)
	s.Equal(int64(1000), job.JobNumber)
	s.Equal(domain.JobStatusQuote, savedJob.Status, "missing status defaults to QUOTE")
	s.NotEmpty(savedJob.JobID)
	s.Len(savedJob.LineItems, 1)
	s.NotEmpty(savedJob.LineItems[0].LineItemID)
	s.Equal("user-1", savedJob.CreatedBy)
	s.jobRepo.AssertExpectations(s.T())
}

func (s *JobServiceTestSuite) TestCreateJobRejectsUnknownCustomer() {
	s.customerRepo.On("FindCustomerByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	job, err := s.service.CreateJob(s.ctx, dto.CreateJobRequest{Title: "Job", CustomerID: "ghost"}, "user-1")

	s.Nil(job)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.jobRepo.AssertNotCalled(s.T(), "SaveJob", mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestCreateJobWithoutCustomer() {
	var savedJob domain.Job
	s.jobRepo.On("SaveJob", s.ctx, mock.AnythingOfType("domain.Job")).
		Run(func(args mock.Arguments) { savedJob = args.Get(1).(domain.Job) }).
		Return(int64(1002), nil)
	s.jobRepo.On("FindJobByID", s.ctx, mock.AnythingOfType("string")).
		Return(&domain.Job{JobID: "job-2", JobNumber: 1002, Status: domain.JobStatusQuote}, nil)

	job, err := s.service.CreateJob(s.ctx, dto.CreateJobRequest{Title: "Walk-in repair"}, "user-1")

	s.NoError(err)
	s.NotNil(job)
	s.Empty(savedJob.CustomerID, "a job needs no customer")
	s.customerRepo.AssertNotCalled(s.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestUpdateJobAppliesPartialFields() {
	existing := &domain.Job{
		JobID:     "job-1",
		JobNumber: 1001,
		Title:     "Old title",
		Status:    domain.JobStatusQuote,
		Revenue:   decimal.NewFromInt(500),
	}
	s.jobRepo.On("FindJobByID", s.ctx, "job-1").Return(existing, nil)

	var updated domain.Job
	var replacedItems bool
	s.jobRepo.On("UpdateJob", s.ctx, mock.AnythingOfType("domain.Job"), false).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Job)
			replacedItems = args.Get(2).(bool)
		}).
		Return(nil)

	newStatus := domain.JobStatusWorkOrder
	_, err := s.service.UpdateJob(s.ctx, "job-1", dto.UpdateJobRequest{Status: &newStatus}, "user-2")

	s.NoError(err)
	s.Equal(domain.JobStatusWorkOrder, updated.Status)
	s.Equal("Old title", updated.Title, "untouched fields survive a partial update")
	s.Equal("user-2", updated.LastUpdatedBy)
	s.False(replacedItems, "line items are not replaced when the request omits them")
}

func (s *JobServiceTestSuite) TestUpdateJobReplacesLineItemsWhenProvided() {
	existing := &domain.Job{JobID: "job-1", Title: "Job"}
	s.jobRepo.On("FindJobByID", s.ctx, "job-1").Return(existing, nil)

	var updated domain.Job
	s.jobRepo.On("UpdateJob", s.ctx, mock.AnythingOfType("domain.Job"), true).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Job) }).
		Return(nil)

	items := []dto.LineItemRequest{
		{Description: "Labour", Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(90)},
	}
	_, err := s.service.UpdateJob(s.ctx, "job-1", dto.UpdateJobRequest{LineItems: &items}, "user-2")

	s.NoError(err)
	s.Len(updated.LineItems, 1)
	s.Equal("Labour", updated.LineItems[0].Description)
}

func (s *JobServiceTestSuite) TestUpdateJobDetachesCustomerOnEmptyID() {
	existing := &domain.Job{
		JobID:      "job-1",
		CustomerID: "cust-1",
		Customer:   &domain.Customer{CustomerID: "cust-1", Name: "Acme"},
	}
	s.jobRepo.On("FindJobByID", s.ctx, "job-1").Return(existing, nil)

	var updated domain.Job
	s.jobRepo.On("UpdateJob", s.ctx, mock.AnythingOfType("domain.Job"), false).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Job) }).
		Return(nil)

	detach := ""
	_, err := s.service.UpdateJob(s.ctx, "job-1", dto.UpdateJobRequest{CustomerID: &detach}, "user-2")

	s.NoError(err)
	s.Empty(updated.CustomerID)
	s.Nil(updated.Customer)
	s.customerRepo.AssertNotCalled(s.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (s *JobServiceTestSuite) TestArchiveJob() {
	s.jobRepo.On("SetJobArchived", s.ctx, "job-1", true, "user-1", mock.AnythingOfType("time.Time")).Return(nil)

	err := s.service.ArchiveJob(s.ctx, "job-1", "user-1")

	s.NoError(err)
	s.jobRepo.AssertExpectations(s.T())
}

func (s *JobServiceTestSuite) TestListJobsPassesFilterThrough() {
	s.jobRepo.On("FindJobs", s.ctx, mock.MatchedBy(func(f portsrepo.ListJobsFilter) bool {
		return f.Status == "QUOTE" && f.Limit == 10 && !f.IncludeArchived
	})).Return([]domain.Job{{JobID: "job-1"}}, nil)

	jobs, err := s.service.ListJobs(s.ctx, dto.ListJobsParams{Status: "QUOTE", Limit: 10})

	s.NoError(err)
	assert.Len(s.T(), jobs, 1)
}
