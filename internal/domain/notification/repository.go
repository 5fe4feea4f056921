package notification

import "context"

// NotificationRepository defines data access methods for notifications.
type NotificationRepository interface {
	// Create inserts a notification
	Create(ctx context.Context, n Notification) (Notification, error)

	// CreateBatch inserts notifications for many recipients at once
	CreateBatch(ctx context.Context, ns []Notification) error

	// GetByID retrieves a notification by ID
	GetByID(ctx context.Context, id string) (Notification, error)

	// ListByRecipient retrieves a user's notifications, newest first
	ListByRecipient(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]Notification, error)

	// CountUnread counts a user's unread notifications
	CountUnread(ctx context.Context, recipientID string) (int, error)

	// MarkRead flags a notification as read
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead flags all of a user's notifications as read
	MarkAllRead(ctx context.Context, recipientID string) error

	// SoftDelete hides a notification from listings
	SoftDelete(ctx context.Context, id string) error
}
