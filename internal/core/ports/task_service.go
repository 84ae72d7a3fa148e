package ports

import (
	"context"
	"time"
)

// CreateTaskInput carries the data for a new task. Status defaults to "Pending".
type CreateTaskInput struct {
	RequesterID string
	ProjectID   string
	AssigneeID  string
	Name        string
	Description string
	DueDate     string
	Status      string
}

// UpdateTaskInput is a partial update: nil fields are left untouched.
type UpdateTaskInput struct {
	TaskID      string
	Name        *string
	Description *string
	DueDate     *string
	Status      *string
	AssignedTo  *string
}

// TaskView is a task with its references rendered for display.
type TaskView struct {
	ID           string
	ProjectID    string
	AssignedTo   string
	AssigneeName string
	Name         string
	Description  string
	DueDate      string
	Status       string
	Progress     *float64
	CreatedAt    time.Time
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	CreateTask(ctx context.Context, input CreateTaskInput) (string, error)
	UpdateTask(ctx context.Context, input UpdateTaskInput) error
	UpdateTaskProgress(ctx context.Context, taskID string, progress float64) error
	ListTasks(ctx context.Context, projectID string) ([]TaskView, error)
}
