package dto

import (
	"time"

	"github.com/flowpro-systems/field_service_app/internal/core/domain"
)

// CreateTaskRequest defines the data needed to create a new task.
type CreateTaskRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateTaskCompletionRequest toggles the completion flag on a task.
type UpdateTaskCompletionRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID        string    `json:"taskID"`
	Content       string    `json:"content"`
	IsCompleted   bool      `json:"isCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToTaskResponse converts a domain.Task to TaskResponse DTO
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:        t.TaskID,
		Content:       t.Content,
		IsCompleted:   t.IsCompleted,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ListTasksParams defines query parameters for listing tasks.
type ListTasksParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListTasksResponse wraps the list of tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToListTasksResponse converts a slice of domain.Task to ListTasksResponse DTO
func ToListTasksResponse(tasks []domain.Task) ListTasksResponse {
	res := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = ToTaskResponse(&t)
	}
	return ListTasksResponse{Tasks: res}
}
