package notification

import "time"

// NotificationType categorizes in-app notifications.
type NotificationType string

const (
	TypeRegistrationReviewed NotificationType = "registration_reviewed"
	TypeAttendanceSubmitted  NotificationType = "attendance_submitted"
	TypeAttendanceReviewed   NotificationType = "attendance_reviewed"
	TypeTaskAssigned         NotificationType = "task_assigned"
	TypeTaskSubmitted        NotificationType = "task_submitted"
	TypeDocumentSubmitted    NotificationType = "document_submitted"
	TypeDocumentReviewed     NotificationType = "document_reviewed"
	TypeCertificateIssued    NotificationType = "certificate_issued"
)

type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	IsDeleted   bool
	CreatedAt   time.Time
}
