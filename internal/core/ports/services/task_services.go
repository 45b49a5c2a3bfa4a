package services

import (
	"context"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

// TaskSvcFacade defines operations for the shared to-do list.
type TaskSvcFacade interface {
	// CreateTask creates a new task.
	CreateTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error)

	// ListTasks retrieves a paginated list of tasks, open tasks first.
	ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error)

	// SetTaskCompletion toggles the completion flag of a task.
	SetTaskCompletion(ctx context.Context, taskID string, isCompleted bool, requestingUserID string) (*domain.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string, requestingUserID string) error
}
