package models

// Task represents a row in the tasks table.
type Task struct {
	TaskID      string `db:"task_id"`
	Content     string `db:"content"`
	IsCompleted bool   `db:"is_completed"`
	AuditFields
}
