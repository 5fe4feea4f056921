package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance record
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByIDForUpdate retrieves a record by ID with a row lock; call
	// inside a transaction so accumulator deltas serialize per record.
	GetByIDForUpdate(ctx context.Context, id string) (Attendance, error)

	// GetByUserAndDate retrieves the non-deleted record for a user on a date
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (Attendance, error)

	// Update persists record mutations
	Update(ctx context.Context, a Attendance) error

	// Delete removes the row permanently
	Delete(ctx context.Context, id string) error

	// List retrieves records matching the filter, newest first
	List(ctx context.Context, filter ListFilter) ([]Attendance, int, error)

	// ListByUser retrieves a user's non-deleted records, newest first
	ListByUser(ctx context.Context, userID string) ([]Attendance, error)

	// MarkAbsentees inserts an Absent record for every approved intern
	// without a record on date. Relies on ON CONFLICT (user_id, date)
	// DO NOTHING so concurrent sweeps stay idempotent. Returns the
	// number of records created.
	MarkAbsentees(ctx context.Context, date time.Time, remarks string) (int64, error)
}
