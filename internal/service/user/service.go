package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/email"
)

type UserServiceImpl struct {
	user.UserRepository
	emailService email.EmailService
	notifier     notification.NotificationService
}

func NewUserService(
	repo user.UserRepository,
	emailService email.EmailService,
	notifier notification.NotificationService,
) *UserServiceImpl {
	return &UserServiceImpl{
		UserRepository: repo,
		emailService:   emailService,
		notifier:       notifier,
	}
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, id string) (user.User, error) {
	return s.UserRepository.GetByID(ctx, id)
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	usr, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.User{}, err
	}

	if req.FirstName != nil {
		usr.FirstName = *req.FirstName
	}
	if req.MiddleName != nil {
		usr.MiddleName = req.MiddleName
	}
	if req.LastName != nil {
		usr.LastName = *req.LastName
	}
	if req.Gender != nil {
		usr.Gender = req.Gender
	}
	if req.ContactNumber != nil {
		usr.ContactNumber = req.ContactNumber
	}
	if req.Course != nil {
		usr.Course = req.Course
	}
	if req.School != nil {
		usr.School = req.School
	}
	if req.Address != nil {
		usr.Address = req.Address
	}

	if err := s.UserRepository.Update(ctx, usr); err != nil {
		return user.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return usr, nil
}

// ListInterns implements user.UserService.
func (s *UserServiceImpl) ListInterns(ctx context.Context, status *user.AccountStatus) ([]user.User, error) {
	return s.UserRepository.ListByRole(ctx, user.RoleIntern, status)
}

// ReviewRegistration implements user.UserService.
func (s *UserServiceImpl) ReviewRegistration(ctx context.Context, id string, approve bool) (user.User, error) {
	usr, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}

	status := user.StatusApproved
	if !approve {
		status = user.StatusDisapproved
	}

	if err := s.UserRepository.UpdateStatus(ctx, id, status); err != nil {
		return user.User{}, fmt.Errorf("failed to update status: %w", err)
	}
	usr.Status = status

	// Decision mail is best-effort; the review itself already stuck.
	var mailErr error
	if approve {
		mailErr = s.emailService.SendRegistrationApproved(usr.Email, usr.FullName())
	} else {
		mailErr = s.emailService.SendRegistrationRejected(usr.Email, usr.FullName())
	}
	if mailErr != nil {
		slog.Warn("failed to send registration decision email", "user_id", usr.ID, "error", mailErr)
	}

	decision := "approved"
	if !approve {
		decision = "disapproved"
	}
	if err := s.notifier.Notify(ctx, notification.Notification{
		RecipientID: usr.ID,
		Type:        notification.TypeRegistrationReviewed,
		Title:       "Registration " + decision,
		Message:     fmt.Sprintf("Your registration has been %s", decision),
	}); err != nil {
		slog.Warn("failed to deliver registration notification", "user_id", usr.ID, "error", err)
	}

	return usr, nil
}

// SetHoursTarget implements user.UserService.
func (s *UserServiceImpl) SetHoursTarget(ctx context.Context, req user.SetHoursTargetRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	usr, err := s.UserRepository.GetByID(ctx, req.UserID)
	if err != nil {
		return user.User{}, err
	}

	if err := s.UserRepository.SetHoursTarget(ctx, req.UserID, req.Hours); err != nil {
		return user.User{}, fmt.Errorf("failed to set hours target: %w", err)
	}

	usr.HoursToRender = &req.Hours
	return usr, nil
}
