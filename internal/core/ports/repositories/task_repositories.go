package repositories

import (
	"context"
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// TaskReader defines read operations for task data
type TaskReader interface {
	// FindTaskByID retrieves a specific task by ID.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// FindTasks retrieves a paginated list of tasks, open tasks first.
	FindTasks(ctx context.Context, limit int, offset int) ([]domain.Task, error)

	// CountOpenTasks returns the number of incomplete tasks.
	CountOpenTasks(ctx context.Context) (int64, error)
}

// TaskWriter defines write operations for task data
type TaskWriter interface {
	// SaveTask persists a new task.
	SaveTask(ctx context.Context, task domain.Task) error

	// SetTaskCompletion updates the completion flag of a task.
	SetTaskCompletion(ctx context.Context, taskID string, isCompleted bool, updatedBy string, updatedAt time.Time) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskRepositoryFacade combines all task-related repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
