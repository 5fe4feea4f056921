package task

import (
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/validator"
)

// ========================================
// TASK DTOs
// ========================================

type CreateTaskRequest struct {
	AssignerID  string     `json:"-"`
	AssigneeID  string     `json:"assignee_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssigneeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignee_id",
			Message: "assignee_id is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID          string     `json:"-"`
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitTaskRequest struct {
	ID      string  `json:"-"`
	UserID  string  `json:"-"`
	Remarks *string `json:"remarks,omitempty"`
}

type TaskResponse struct {
	ID                string     `json:"id"`
	AssignerID        string     `json:"assigner_id"`
	AssignerName      *string    `json:"assigner_name,omitempty"`
	AssigneeID        string     `json:"assignee_id"`
	AssigneeName      *string    `json:"assignee_name,omitempty"`
	Title             string     `json:"title"`
	Description       *string    `json:"description,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	Status            string     `json:"status"`
	SubmissionRemarks *string    `json:"submission_remarks,omitempty"`
	SubmittedAt       *time.Time `json:"submitted_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func ToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:                t.ID,
		AssignerID:        t.AssignerID,
		AssignerName:      t.AssignerName,
		AssigneeID:        t.AssigneeID,
		AssigneeName:      t.AssigneeName,
		Title:             t.Title,
		Description:       t.Description,
		DueDate:           t.DueDate,
		Status:            string(t.Status),
		SubmissionRemarks: t.SubmissionRemarks,
		SubmittedAt:       t.SubmittedAt,
		CompletedAt:       t.CompletedAt,
		CreatedAt:         t.CreatedAt,
	}
}
