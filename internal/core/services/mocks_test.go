package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
)

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindCustomers(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Error(1)
}

func (m *MockCustomerRepository) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

// --- Mock JobRepository ---

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) SaveJob(ctx context.Context, job domain.Job) (int64, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockJobRepository) FindJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	args := m.Called(ctx, jobID)
	var job *domain.Job
	if args.Get(0) != nil {
		job = args.Get(0).(*domain.Job)
	}
	return job, args.Error(1)
}

func (m *MockJobRepository) FindJobs(ctx context.Context, filter portsrepo.ListJobsFilter) ([]domain.Job, error) {
	args := m.Called(ctx, filter)
	var jobs []domain.Job
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.Job)
	}
	return jobs, args.Error(1)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, job domain.Job, replaceItems bool) error {
	args := m.Called(ctx, job, replaceItems)
	return args.Error(0)
}

func (m *MockJobRepository) SetJobArchived(ctx context.Context, jobID string, archived bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, jobID, archived, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock TaskRepository ---

type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	var task *domain.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *MockTaskRepository) FindTasks(ctx context.Context, limit, offset int) ([]domain.Task, error) {
	args := m.Called(ctx, limit, offset)
	var tasks []domain.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) CountOpenTasks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) SetTaskCompletion(ctx context.Context, taskID string, isCompleted bool, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, taskID, isCompleted, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	args := m.Called(ctx, taskID)
	return args.Error(0)
}

// --- Mock DocTemplateRepository ---

type MockDocTemplateRepository struct {
	mock.Mock
}

func (m *MockDocTemplateRepository) SaveTemplate(ctx context.Context, template domain.DocTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockDocTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.DocTemplate, error) {
	args := m.Called(ctx, templateID)
	var template *domain.DocTemplate
	if args.Get(0) != nil {
		template = args.Get(0).(*domain.DocTemplate)
	}
	return template, args.Error(1)
}

func (m *MockDocTemplateRepository) FindTemplates(ctx context.Context, limit, offset int) ([]domain.DocTemplate, error) {
	args := m.Called(ctx, limit, offset)
	var templates []domain.DocTemplate
	if args.Get(0) != nil {
		templates = args.Get(0).([]domain.DocTemplate)
	}
	return templates, args.Error(1)
}

func (m *MockDocTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}
