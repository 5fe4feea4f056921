package user

import "context"

// UserService manages accounts, registration review and the hours target.
type UserService interface {
	// GetProfile retrieves a user's profile
	GetProfile(ctx context.Context, id string) (User, error)

	// UpdateProfile updates profile fields
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (User, error)

	// ListInterns lists intern accounts, optionally filtered by status
	ListInterns(ctx context.Context, status *AccountStatus) ([]User, error)

	// ReviewRegistration approves or disapproves a pending registration
	ReviewRegistration(ctx context.Context, id string, approve bool) (User, error)

	// SetHoursTarget sets the intern's required hours to render
	SetHoursTarget(ctx context.Context, req SetHoursTargetRequest) (User, error)
}
