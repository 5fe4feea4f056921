package user

import (
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type UpdateProfileRequest struct {
	ID            string  `json:"-"`
	FirstName     *string `json:"first_name,omitempty"`
	MiddleName    *string `json:"middle_name,omitempty"`
	LastName      *string `json:"last_name,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	Course        *string `json:"course,omitempty"`
	School        *string `json:"school,omitempty"`
	Address       *string `json:"address,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name cannot be empty",
		})
	}

	if r.LastName != nil && validator.IsEmpty(*r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name cannot be empty",
		})
	}

	if r.ContactNumber != nil && !validator.IsValidContactNumber(*r.ContactNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_number",
			Message: "contact number must start with 09 and be 11 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetHoursTargetRequest struct {
	UserID string `json:"-"`
	Hours  int    `json:"hours_to_render"`
}

func (r *SetHoursTargetRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Hours <= 0 || r.Hours > 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours_to_render",
			Message: "hours to render must be between 1 and 2000",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	Role               string   `json:"role"`
	Status             string   `json:"status"`
	FirstName          string   `json:"first_name"`
	MiddleName         *string  `json:"middle_name,omitempty"`
	LastName           string   `json:"last_name"`
	Gender             *string  `json:"gender,omitempty"`
	ContactNumber      *string  `json:"contact_number,omitempty"`
	Course             *string  `json:"course,omitempty"`
	School             *string  `json:"school,omitempty"`
	Address            *string  `json:"address,omitempty"`
	ProfileImagePath   *string  `json:"profile_image_path,omitempty"`
	HoursToRender      *int     `json:"hours_to_render,omitempty"`
	TotalRenderedHours float64  `json:"total_rendered_hours"`
	CreatedAt          string   `json:"created_at"`
}

// ToResponse maps a User entity to its API representation.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Role:               string(u.Role),
		Status:             string(u.Status),
		FirstName:          u.FirstName,
		MiddleName:         u.MiddleName,
		LastName:           u.LastName,
		Gender:             u.Gender,
		ContactNumber:      u.ContactNumber,
		Course:             u.Course,
		School:             u.School,
		Address:            u.Address,
		ProfileImagePath:   u.ProfileImagePath,
		HoursToRender:      u.HoursToRender,
		TotalRenderedHours: u.TotalRenderedHours,
		CreatedAt:          u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
