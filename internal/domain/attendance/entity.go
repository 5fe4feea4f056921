package attendance

import (
	"time"
)

// ApprovalStatus tracks the review lifecycle of an attendance record.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
	StatusAbsent   ApprovalStatus = "Absent"
)

type Attendance struct {
	ID            string
	UserID        string
	Date          time.Time
	Session       SessionKind
	TimeIn        *time.Time
	TimeOut       *time.Time
	RenderedHours *float64
	Overtime      *float64
	LateMinutes   int
	Status        ApprovalStatus
	IsAbsent      bool
	IsDeleted     bool
	ProofPath     *string
	Remarks       *string
	ApprovedBy    *string
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	UserName *string
}

// Counted reports whether this record currently contributes its rendered
// hours to the owner's total. Every state transition compares Counted
// before and after to decide the accumulator delta.
func (a *Attendance) Counted() bool {
	return a.Status == StatusApproved && !a.IsAbsent && !a.IsDeleted && a.RenderedHours != nil
}

// CountedHours returns the hours this record contributes, zero when it
// does not count.
func (a *Attendance) CountedHours() float64 {
	if !a.Counted() {
		return 0
	}
	return *a.RenderedHours
}
