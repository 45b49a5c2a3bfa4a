package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/core/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

type TaskServiceTestSuite struct {
	suite.Suite
	repo    *MockTaskRepository
	service portssvc.TaskSvcFacade
	ctx     context.Context
}

func (s *TaskServiceTestSuite) SetupTest() {
	s.repo = new(MockTaskRepository)
	s.service = services.NewTaskService(s.repo)
	s.ctx = context.Background()
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}

func (s *TaskServiceTestSuite) TestCreateTaskStartsIncomplete() {
	var saved domain.Task
	s.repo.On("SaveTask", s.ctx, mock.AnythingOfType("domain.Task")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Task) }).
		Return(nil)

	task, err := s.service.CreateTask(s.ctx, dto.CreateTaskRequest{Content: "Order filters"}, "user-1")

	s.NoError(err)
	s.NotEmpty(task.TaskID)
	s.False(saved.IsCompleted, "new tasks start incomplete")
	s.Equal("Order filters", saved.Content)
}

func (s *TaskServiceTestSuite) TestSetTaskCompletionReturnsFreshTask() {
	s.repo.On("SetTaskCompletion", s.ctx, "task-1", true, "user-1", mock.AnythingOfType("time.Time")).Return(nil)
	s.repo.On("FindTaskByID", s.ctx, "task-1").Return(&domain.Task{TaskID: "task-1", IsCompleted: true}, nil)

	task, err := s.service.SetTaskCompletion(s.ctx, "task-1", true, "user-1")

	s.NoError(err)
	s.True(task.IsCompleted)
}

func (s *TaskServiceTestSuite) TestSetTaskCompletionNotFound() {
	s.repo.On("SetTaskCompletion", s.ctx, "ghost", false, "user-1", mock.AnythingOfType("time.Time")).
		Return(apperrors.ErrNotFound)

	task, err := s.service.SetTaskCompletion(s.ctx, "ghost", false, "user-1")

	s.Nil(task)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TaskServiceTestSuite) TestDeleteTask() {
	s.repo.On("DeleteTask", s.ctx, "task-1").Return(nil)

	s.NoError(s.service.DeleteTask(s.ctx, "task-1", "user-1"))
	s.repo.AssertExpectations(s.T())
}
