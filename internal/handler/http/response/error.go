package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/attendance"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/auth"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/certificate"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/document"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/task"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		BadRequest(w, "OAuth state mismatch", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAccountNotApproved):
		Forbidden(w, "Account has not been approved yet")
	case errors.Is(err, user.ErrAccountDisapproved):
		Forbidden(w, "Account registration was disapproved")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role for this operation", nil)
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrInvalidSessionKind):
		BadRequest(w, "Invalid session kind", nil)
	case errors.Is(err, attendance.ErrOutsideSessionWindow):
		BadRequest(w, "Current time is outside the session window", nil)
	case errors.Is(err, attendance.ErrAlreadyTimedIn):
		Conflict(w, "Already timed in for today")
	case errors.Is(err, attendance.ErrAlreadyTimedOut):
		Conflict(w, "Already timed out for today")
	case errors.Is(err, attendance.ErrNoTimeInRecord):
		BadRequest(w, "No time-in record for today", nil)
	case errors.Is(err, attendance.ErrHoursTargetNotSet):
		BadRequest(w, "Hours to render has not been set", nil)
	case errors.Is(err, attendance.ErrHoursComplete):
		Conflict(w, "Required hours already completed")
	case errors.Is(err, attendance.ErrInvalidProof):
		BadRequest(w, "Invalid attendance proof", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrSweepTooEarly):
		BadRequest(w, "Absence sweep runs after the working day ends", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrNotAssignee):
		Forbidden(w, "Task belongs to another user")
	case errors.Is(err, task.ErrTaskNotSubmitted):
		Conflict(w, "Task has not been submitted")
	case errors.Is(err, task.ErrTaskAlreadyClosed):
		Conflict(w, "Task is already completed")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrInvalidDocumentKind),
		errors.Is(err, document.ErrInvalidFile):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, document.ErrNotOwner):
		Forbidden(w, "Document belongs to another user")
	case errors.Is(err, document.ErrAlreadyReviewed):
		Conflict(w, "Document has already been reviewed")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrNotRecipient):
		Forbidden(w, "Notification belongs to another user")

	// Certificate domain errors
	case errors.Is(err, certificate.ErrCertificateNotFound):
		NotFound(w, "Certificate not found")
	case errors.Is(err, certificate.ErrHoursIncomplete):
		BadRequest(w, "Required hours have not been completed", nil)
	case errors.Is(err, certificate.ErrAlreadyIssued):
		Conflict(w, "Certificate has already been issued")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
