package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portsrepo "github.com/flowpro-systems/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

// taskService implements the TaskSvcFacade interface
type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
}

// NewTaskService creates a new task service
func NewTaskService(repo portsrepo.TaskRepositoryFacade) portssvc.TaskSvcFacade {
	return &taskService{taskRepo: repo}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error) {
	now := time.Now()
	task := domain.Task{
		TaskID:  uuid.NewString(),
		Content: req.Content,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to create task", slog.String("task_id", task.TaskID))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

func (s *taskService) ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error) {
	tasks, err := s.taskRepo.FindTasks(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks")
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *taskService) SetTaskCompletion(ctx context.Context, taskID string, isCompleted bool, requestingUserID string) (*domain.Task, error) {
	if err := s.taskRepo.SetTaskCompletion(ctx, taskID, isCompleted, requestingUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update task completion", slog.String("task_id", taskID))
		return nil, err
	}
	return s.taskRepo.FindTaskByID(ctx, taskID)
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string, requestingUserID string) error {
	if err := s.taskRepo.DeleteTask(ctx, taskID); err != nil {
		s.LogError(ctx, err, "Failed to delete task", slog.String("task_id", taskID))
		return err
	}
	s.LogInfo(ctx, "Task deleted", slog.String("task_id", taskID), slog.String("deleted_by", requestingUserID))
	return nil
}
