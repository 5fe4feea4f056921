package attendance

import (
	"context"
	"time"
)

// AttendanceService is the attendance accounting engine.
type AttendanceService interface {
	// ClockIn opens today's record for a session, storing the proof photo
	ClockIn(ctx context.Context, req ClockInRequest) (Attendance, error)

	// ClockOut closes today's open record and computes rendered hours
	ClockOut(ctx context.Context, req ClockOutRequest) (Attendance, error)

	// MarkAbsent lets an intern self-declare absence for today
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (Attendance, error)

	// Review approves or rejects a record and settles the owner's
	// rendered-hours total
	Review(ctx context.Context, req ReviewRequest) (Attendance, error)

	// SoftDelete hides a record, withdrawing its hours if counted
	SoftDelete(ctx context.Context, id string) error

	// Restore un-hides a soft-deleted record, re-crediting its hours
	Restore(ctx context.Context, id string) error

	// Purge permanently removes a record and its proof file
	Purge(ctx context.Context, id string) error

	// RunAbsenceSweep marks approved interns without a record for date
	// as absent; only valid after the working day has ended
	RunAbsenceSweep(ctx context.Context, date time.Time) (int64, error)

	// GetMy lists the caller's own records
	GetMy(ctx context.Context, userID string) ([]Attendance, error)

	// List lists records for reviewing staff
	List(ctx context.Context, filter ListFilter) ([]Attendance, int, error)

	// GetByID retrieves a single record
	GetByID(ctx context.Context, id string) (Attendance, error)
}
