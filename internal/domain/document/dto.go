package document

import (
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/validator"
)

// maxDocumentSize caps a single document upload.
const maxDocumentSize = 10 << 20 // 10MB

var allowedExts = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png"}

// ========================================
// DOCUMENT DTOs
// ========================================

type UploadRequest struct {
	OwnerID    string                `json:"-"`
	Kind       string                `json:"kind"`
	Title      string                `json:"title"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadRequest) Validate() error {
	var errs validator.ValidationErrors

	switch DocumentKind(r.Kind) {
	case KindRequirement, KindReport, KindEvaluation:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: requirement, report, evaluation",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "document file is required",
		})
	} else {
		ext := strings.ToLower(filepath.Ext(r.FileHeader.Filename))
		if !validator.IsInSlice(ext, allowedExts) {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "invalid file type: only pdf, doc, docx, jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > maxDocumentSize {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: "document size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewRequest struct {
	DocumentID string  `json:"-"`
	ReviewerID string  `json:"-"`
	Approved   bool    `json:"-"`
	Remarks    *string `json:"remarks,omitempty"`
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

type DocumentResponse struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	OwnerName     *string    `json:"owner_name,omitempty"`
	Kind          string     `json:"kind"`
	Title         string     `json:"title"`
	FilePath      string     `json:"file_path"`
	FileSize      int64      `json:"file_size"`
	Status        string     `json:"status"`
	ReviewRemarks *string    `json:"review_remarks,omitempty"`
	ReviewedBy    *string    `json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:            d.ID,
		OwnerID:       d.OwnerID,
		OwnerName:     d.OwnerName,
		Kind:          string(d.Kind),
		Title:         d.Title,
		FilePath:      d.FilePath,
		FileSize:      d.FileSize,
		Status:        string(d.Status),
		ReviewRemarks: d.ReviewRemarks,
		ReviewedBy:    d.ReviewedBy,
		ReviewedAt:    d.ReviewedAt,
		CreatedAt:     d.CreatedAt,
	}
}
