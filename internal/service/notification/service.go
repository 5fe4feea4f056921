package notification

import (
	"context"
	"fmt"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	notification.NotificationRepository
	hub *sse.Hub
}

func NewNotificationService(repo notification.NotificationRepository, hub *sse.Hub) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		NotificationRepository: repo,
		hub:                    hub,
	}
}

// Notify implements notification.NotificationService.
func (s *NotificationServiceImpl) Notify(ctx context.Context, n notification.Notification) error {
	created, err := s.NotificationRepository.Create(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.push(created)
	return nil
}

// NotifyMany implements notification.NotificationService.
func (s *NotificationServiceImpl) NotifyMany(ctx context.Context, recipientIDs []string, n notification.Notification) error {
	if len(recipientIDs) == 0 {
		return nil
	}

	batch := make([]notification.Notification, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		copied := n
		copied.RecipientID = id
		batch = append(batch, copied)
	}

	if err := s.NotificationRepository.CreateBatch(ctx, batch); err != nil {
		return fmt.Errorf("failed to create notifications: %w", err)
	}

	for _, created := range batch {
		s.push(created)
	}
	return nil
}

// List implements notification.NotificationService.
func (s *NotificationServiceImpl) List(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]notification.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	return s.NotificationRepository.ListByRecipient(ctx, recipientID, unreadOnly, limit)
}

// MarkRead implements notification.NotificationService.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, recipientID string, id string) error {
	n, err := s.NotificationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != recipientID {
		return notification.ErrNotRecipient
	}
	return s.NotificationRepository.MarkRead(ctx, id)
}

// Delete implements notification.NotificationService.
func (s *NotificationServiceImpl) Delete(ctx context.Context, recipientID string, id string) error {
	n, err := s.NotificationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != recipientID {
		return notification.ErrNotRecipient
	}
	return s.NotificationRepository.SoftDelete(ctx, id)
}

func (s *NotificationServiceImpl) push(n notification.Notification) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(n.RecipientID, sse.Event{
		UserID: n.RecipientID,
		Event:  "notification",
		Data:   notification.ToResponse(n),
	})
}
