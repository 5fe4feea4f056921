package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Full access, manages registrations and purges
	RoleSupervisor Role = "supervisor" // Reviews attendance, tasks and documents
	RoleTrainer    Role = "trainer"    // Reviews attendance and tasks
	RoleIntern     Role = "intern"     // Renders hours
)

// AccountStatus tracks the registration approval flow.
type AccountStatus string

const (
	StatusPending     AccountStatus = "Pending"
	StatusApproved    AccountStatus = "Approved"
	StatusDisapproved AccountStatus = "Disapproved"
)

type User struct {
	ID               string
	Email            string
	PasswordHash     *string
	Role             Role
	Status           AccountStatus
	FirstName        string
	MiddleName       *string
	LastName         string
	Birthdate        *time.Time
	Gender           *string
	ContactNumber    *string
	Course           *string
	School           *string
	Address          *string
	ProfileImagePath *string
	OAuthProvider    *string
	OAuthProviderID  *string

	// Internship hours account. HoursToRender is the required target;
	// TotalRenderedHours is a denormalized accumulator maintained by the
	// attendance service and must never go negative.
	HoursToRender      *int
	TotalRenderedHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in notifications.
func (u *User) FullName() string {
	if u.MiddleName != nil && *u.MiddleName != "" {
		return u.FirstName + " " + *u.MiddleName + " " + u.LastName
	}
	return u.FirstName + " " + u.LastName
}

// IsStaff checks if the user reviews intern submissions
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleSupervisor || u.Role == RoleTrainer
}

// CanReviewAttendance checks if user can approve or reject attendance
func (u *User) CanReviewAttendance() bool {
	return u.IsStaff()
}

// HoursComplete reports whether the intern has rendered the required hours.
func (u *User) HoursComplete() bool {
	return u.HoursToRender != nil && *u.HoursToRender > 0 &&
		u.TotalRenderedHours >= float64(*u.HoursToRender)
}
