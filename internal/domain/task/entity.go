package task

import "time"

// TaskStatus tracks a task through assignment and completion.
type TaskStatus string

const (
	StatusAssigned   TaskStatus = "Assigned"
	StatusInProgress TaskStatus = "InProgress"
	StatusSubmitted  TaskStatus = "Submitted"
	StatusCompleted  TaskStatus = "Completed"
)

type Task struct {
	ID                string
	AssignerID        string
	AssigneeID        string
	Title             string
	Description       *string
	DueDate           *time.Time
	Status            TaskStatus
	SubmissionRemarks *string
	SubmittedAt       *time.Time
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	AssigneeName *string
	AssignerName *string
}
