package user

import "errors"

// User domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrAccountNotApproved = errors.New("account has not been approved yet")
	ErrAccountDisapproved = errors.New("account registration was disapproved")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidHoursTarget = errors.New("hours to render must be a positive number")

	// Access control errors
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrStaffAccessRequired = errors.New("supervisor or trainer access required")
)
