package pgsql

import (
	"context"
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

type PgxTaskRepository struct {
	pool *pgxpool.Pool
}

func newPgxTaskRepository(pool *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{pool: pool}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func toDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:      m.TaskID,
		Content:     m.Content,
		IsCompleted: m.IsCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// SaveTask inserts a new task.
func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := `
		INSERT INTO tasks (task_id, content, is_completed, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.pool.Exec(ctx, query,
		task.TaskID,
		task.Content,
		task.IsCompleted,
		task.CreatedAt,
		task.CreatedBy,
		task.LastUpdatedAt,
		task.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: task with ID %s already exists", apperrors.ErrDuplicate, task.TaskID)
		}
		return fmt.Errorf("failed to save task %s: %w", task.TaskID, err)
	}
	return nil
}

// FindTaskByID retrieves a task by its ID.
func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `
		SELECT task_id, content, is_completed, created_at, created_by, last_updated_at, last_updated_by
		FROM tasks
		WHERE task_id = $1;
	`
	var m models.Task
	err := r.pool.QueryRow(ctx, query, taskID).Scan(
		&m.TaskID,
		&m.Content,
		&m.IsCompleted,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task by ID %s: %w", taskID, err)
	}

	d := toDomainTask(m)
	return &d, nil
}

// FindTasks retrieves tasks, open ones first, then newest first within each group.
func (r *PgxTaskRepository) FindTasks(ctx context.Context, limit int, offset int) ([]domain.Task, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT task_id, content, is_completed, created_at, created_by, last_updated_at, last_updated_by
		FROM tasks
		ORDER BY is_completed, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var m models.Task
		if err := rows.Scan(&m.TaskID, &m.Content, &m.IsCompleted, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, toDomainTask(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}
	return tasks, nil
}

// CountOpenTasks returns the number of incomplete tasks.
func (r *PgxTaskRepository) CountOpenTasks(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE is_completed = FALSE;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count open tasks: %w", err)
	}
	return count, nil
}

// SetTaskCompletion updates the completion flag of a task.
func (r *PgxTaskRepository) SetTaskCompletion(ctx context.Context, taskID string, isCompleted bool, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE tasks SET is_completed = $2, last_updated_at = $3, last_updated_by = $4
		WHERE task_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, taskID, isCompleted, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTask removes a task.
func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
