package user

import (
	"context"
)

// UserRepository defines data access methods for users and their hours account.
type UserRepository interface {
	// Create inserts a new user (registration, status Pending)
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// Update updates profile fields
	Update(ctx context.Context, u User) error

	// UpdateStatus changes the registration approval status
	UpdateStatus(ctx context.Context, id string, status AccountStatus) error

	// SetHoursTarget sets the required hours to render
	SetHoursTarget(ctx context.Context, id string, hours int) error

	// AddRenderedHours applies a delta to total_rendered_hours, clamped at
	// zero. The arithmetic happens in a single UPDATE so concurrent reviews
	// for the same user cannot lose updates.
	AddRenderedHours(ctx context.Context, id string, delta float64) error

	// ListByRole retrieves users with a given role, optionally filtered by status
	ListByRole(ctx context.Context, role Role, status *AccountStatus) ([]User, error)

	// ListStaff retrieves all admin/supervisor/trainer users
	ListStaff(ctx context.Context) ([]User, error)

	// LinkGoogleAccount attaches an OAuth identity to an existing user
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
