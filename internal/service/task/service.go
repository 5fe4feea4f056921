package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/task"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
)

type TaskServiceImpl struct {
	task.TaskRepository
	userRepo user.UserRepository
	notifier notification.NotificationService

	now func() time.Time
}

func NewTaskService(
	repo task.TaskRepository,
	userRepo user.UserRepository,
	notifier notification.NotificationService,
) *TaskServiceImpl {
	return &TaskServiceImpl{
		TaskRepository: repo,
		userRepo:       userRepo,
		notifier:       notifier,
		now:            time.Now,
	}
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	assignee, err := s.userRepo.GetByID(ctx, req.AssigneeID)
	if err != nil {
		return task.Task{}, err
	}
	if assignee.Role != user.RoleIntern {
		return task.Task{}, user.ErrInvalidRole
	}

	created, err := s.TaskRepository.Create(ctx, task.Task{
		AssignerID:  req.AssignerID,
		AssigneeID:  req.AssigneeID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      task.StatusAssigned,
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	s.notify(ctx, notification.Notification{
		RecipientID: req.AssigneeID,
		SenderID:    &req.AssignerID,
		Type:        notification.TypeTaskAssigned,
		Title:       "New task assigned",
		Message:     fmt.Sprintf("You have been assigned: %s", created.Title),
		Data:        map[string]interface{}{"task_id": created.ID},
	})

	return created, nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.Task{}, err
	}
	if t.Status == task.StatusCompleted {
		return task.Task{}, task.ErrTaskAlreadyClosed
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, assignerID string, id string) error {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if t.AssignerID != assignerID {
		return task.ErrNotAssignee
	}
	return s.TaskRepository.Delete(ctx, id)
}

// Start implements task.TaskService.
func (s *TaskServiceImpl) Start(ctx context.Context, userID string, id string) (task.Task, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.Task{}, err
	}
	if t.AssigneeID != userID {
		return task.Task{}, task.ErrNotAssignee
	}
	if t.Status == task.StatusCompleted {
		return task.Task{}, task.ErrTaskAlreadyClosed
	}

	t.Status = task.StatusInProgress
	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return t, nil
}

// Submit implements task.TaskService.
func (s *TaskServiceImpl) Submit(ctx context.Context, req task.SubmitTaskRequest) (task.Task, error) {
	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.Task{}, err
	}
	if t.AssigneeID != req.UserID {
		return task.Task{}, task.ErrNotAssignee
	}
	if t.Status == task.StatusCompleted {
		return task.Task{}, task.ErrTaskAlreadyClosed
	}

	now := s.now()
	t.Status = task.StatusSubmitted
	t.SubmissionRemarks = req.Remarks
	t.SubmittedAt = &now

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	s.notify(ctx, notification.Notification{
		RecipientID: t.AssignerID,
		SenderID:    &req.UserID,
		Type:        notification.TypeTaskSubmitted,
		Title:       "Task submitted",
		Message:     fmt.Sprintf("A submission is waiting for review: %s", t.Title),
		Data:        map[string]interface{}{"task_id": t.ID},
	})

	return t, nil
}

// Complete implements task.TaskService.
func (s *TaskServiceImpl) Complete(ctx context.Context, reviewerID string, id string) (task.Task, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.Task{}, err
	}
	if t.Status != task.StatusSubmitted {
		return task.Task{}, task.ErrTaskNotSubmitted
	}

	now := s.now()
	t.Status = task.StatusCompleted
	t.CompletedAt = &now

	if err := s.TaskRepository.Update(ctx, t); err != nil {
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	s.notify(ctx, notification.Notification{
		RecipientID: t.AssigneeID,
		SenderID:    &reviewerID,
		Type:        notification.TypeTaskAssigned,
		Title:       "Task completed",
		Message:     fmt.Sprintf("Your submission was accepted: %s", t.Title),
		Data:        map[string]interface{}{"task_id": t.ID},
	})

	return t, nil
}

// ListMine implements task.TaskService.
func (s *TaskServiceImpl) ListMine(ctx context.Context, userID string) ([]task.Task, error) {
	return s.TaskRepository.ListByAssignee(ctx, userID)
}

// ListAssigned implements task.TaskService.
func (s *TaskServiceImpl) ListAssigned(ctx context.Context, assignerID string) ([]task.Task, error) {
	return s.TaskRepository.ListByAssigner(ctx, assignerID)
}

func (s *TaskServiceImpl) notify(ctx context.Context, n notification.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		slog.Warn("failed to deliver task notification", "type", n.Type, "error", err)
	}
}
