package notification

import "context"

// NotificationService delivers in-app notifications and pushes them
// over SSE to connected clients.
type NotificationService interface {
	// Notify creates a notification for one recipient and pushes it
	Notify(ctx context.Context, n Notification) error

	// NotifyMany fans a notification out to several recipients
	NotifyMany(ctx context.Context, recipientIDs []string, n Notification) error

	// List retrieves a user's notifications
	List(ctx context.Context, recipientID string, unreadOnly bool, limit int) ([]Notification, error)

	// CountUnread counts a user's unread notifications
	CountUnread(ctx context.Context, recipientID string) (int, error)

	// MarkRead flags a notification as read; only the recipient may
	MarkRead(ctx context.Context, recipientID string, id string) error

	// MarkAllRead flags all of a user's notifications as read
	MarkAllRead(ctx context.Context, recipientID string) error

	// Delete hides a notification; only the recipient may
	Delete(ctx context.Context, recipientID string, id string) error
}
