package task

import "context"

// TaskRepository defines data access methods for tasks.
type TaskRepository interface {
	// Create inserts a task
	Create(ctx context.Context, t Task) (Task, error)

	// GetByID retrieves a task by ID
	GetByID(ctx context.Context, id string) (Task, error)

	// Update persists task mutations
	Update(ctx context.Context, t Task) error

	// Delete removes a task
	Delete(ctx context.Context, id string) error

	// ListByAssignee retrieves tasks assigned to a user, newest first
	ListByAssignee(ctx context.Context, assigneeID string) ([]Task, error)

	// ListByAssigner retrieves tasks created by a staff member, newest first
	ListByAssigner(ctx context.Context, assignerID string) ([]Task, error)
}
