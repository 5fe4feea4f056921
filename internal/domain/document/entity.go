package document

import "time"

// DocumentKind categorizes intern uploads.
type DocumentKind string

const (
	KindRequirement DocumentKind = "requirement"
	KindReport      DocumentKind = "report"
	KindEvaluation  DocumentKind = "evaluation"
)

// DocumentStatus tracks the review lifecycle of a document.
type DocumentStatus string

const (
	StatusPending  DocumentStatus = "Pending"
	StatusApproved DocumentStatus = "Approved"
	StatusRejected DocumentStatus = "Rejected"
)

type Document struct {
	ID            string
	OwnerID       string
	Kind          DocumentKind
	Title         string
	FilePath      string
	FileSize      int64
	Status        DocumentStatus
	ReviewRemarks *string
	ReviewedBy    *string
	ReviewedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	OwnerName *string
}
