package attendance

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/validator"
)

// maxProofSize caps the attendance proof photo upload.
const maxProofSize = 5 << 20 // 5MB

// ========================================
// ATTENDANCE DTOs
// ========================================

type ClockInRequest struct {
	UserID  string  `json:"-"`
	Session string  `json:"session"`
	Remarks *string `json:"remarks,omitempty"`

	// Proof comes either as a multipart upload or as a base64 data URL
	// from the in-browser camera capture.
	CameraCapture *string               `json:"camera_capture,omitempty"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

// ValidateProof checks the attached proof photo. Called by the service
// after the window and hours checks so precondition failures surface in
// order.
func (r *ClockInRequest) ValidateProof() error {
	var errs validator.ValidationErrors

	hasCapture := r.CameraCapture != nil && strings.HasPrefix(*r.CameraCapture, "data:image/")
	if r.FileHeader == nil && !hasCapture {
		errs = append(errs, validator.ValidationError{
			Field:   "proof",
			Message: "attendance proof photo is required",
		})
	} else if r.FileHeader != nil {
		if !validator.IsValidImageExt(r.FileHeader.Filename) {
			errs = append(errs, validator.ValidationError{
				Field:   "proof",
				Message: "invalid file type: only jpg, jpeg, png, gif, jfif allowed",
			})
		} else if r.FileHeader.Size > maxProofSize {
			errs = append(errs, validator.ValidationError{
				Field:   "proof",
				Message: "attendance proof photo size must not exceed 5MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	UserID  string  `json:"-"`
	Remarks *string `json:"remarks,omitempty"`
}

type MarkAbsentRequest struct {
	UserID  string  `json:"-"`
	Remarks *string `json:"remarks,omitempty"`
}

type ReviewRequest struct {
	AttendanceID string  `json:"-"`
	ReviewerID   string  `json:"-"`
	Approved     bool    `json:"-"`
	Remarks      *string `json:"remarks,omitempty"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Approved && (r.Remarks == nil || validator.IsEmpty(*r.Remarks)) {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: "remarks are required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListFilter narrows staff attendance listings.
type ListFilter struct {
	UserID   *string
	Status   *ApprovalStatus
	DateFrom *time.Time
	DateTo   *time.Time
	Deleted  bool
	Page     int
	PageSize int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 || f.PageSize > 100 {
		f.PageSize = 20
	}
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	UserName      *string  `json:"user_name,omitempty"`
	Date          string   `json:"date"`
	Session       string   `json:"session"`
	TimeIn        *string  `json:"time_in,omitempty"`
	TimeOut       *string  `json:"time_out,omitempty"`
	RenderedHours *float64 `json:"rendered_hours,omitempty"`
	Overtime      *float64 `json:"overtime,omitempty"`
	LateMinutes   int      `json:"late_minutes"`
	Status        string   `json:"status"`
	IsAbsent      bool     `json:"is_absent"`
	IsDeleted     bool     `json:"is_deleted"`
	ProofPath     *string  `json:"proof_path,omitempty"`
	Remarks       *string  `json:"remarks,omitempty"`
	ApprovedBy    *string  `json:"approved_by,omitempty"`
	ApprovedAt    *string  `json:"approved_at,omitempty"`
}

// ToResponse maps an Attendance entity to its API representation.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		UserName:      a.UserName,
		Date:          a.Date.Format("2006-01-02"),
		Session:       string(a.Session),
		RenderedHours: a.RenderedHours,
		Overtime:      a.Overtime,
		LateMinutes:   a.LateMinutes,
		Status:        string(a.Status),
		IsAbsent:      a.IsAbsent,
		IsDeleted:     a.IsDeleted,
		ProofPath:     a.ProofPath,
		Remarks:       a.Remarks,
		ApprovedBy:    a.ApprovedBy,
	}
	if a.TimeIn != nil {
		s := a.TimeIn.Format("15:04:05")
		resp.TimeIn = &s
	}
	if a.TimeOut != nil {
		s := a.TimeOut.Format("15:04:05")
		resp.TimeOut = &s
	}
	if a.ApprovedAt != nil {
		s := a.ApprovedAt.Format("2006-01-02 15:04:05")
		resp.ApprovedAt = &s
	}
	return resp
}
