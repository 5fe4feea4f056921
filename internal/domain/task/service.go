package task

import "context"

// TaskService manages task assignment and the submission flow.
type TaskService interface {
	// Create assigns a new task to an intern
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)

	// Update edits a task's details; assigner only
	Update(ctx context.Context, req UpdateTaskRequest) (Task, error)

	// Delete removes a task; assigner only
	Delete(ctx context.Context, assignerID string, id string) error

	// Start moves an assigned task to InProgress; assignee only
	Start(ctx context.Context, userID string, id string) (Task, error)

	// Submit marks a task as submitted with remarks; assignee only
	Submit(ctx context.Context, req SubmitTaskRequest) (Task, error)

	// Complete closes a submitted task; staff only
	Complete(ctx context.Context, reviewerID string, id string) (Task, error)

	// ListMine lists tasks assigned to the caller
	ListMine(ctx context.Context, userID string) ([]Task, error)

	// ListAssigned lists tasks the caller has created
	ListAssigned(ctx context.Context, assignerID string) ([]Task, error)

	// GetByID retrieves a single task
	GetByID(ctx context.Context, id string) (Task, error)
}
