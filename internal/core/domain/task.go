package domain

// Task is a quick to-do entry on the dashboard.
type Task struct {
	TaskID      string `json:"taskID"` // Primary Key (e.g., UUID)
	Content     string `json:"content"`
	IsCompleted bool   `json:"isCompleted"`
	AuditFields
}
