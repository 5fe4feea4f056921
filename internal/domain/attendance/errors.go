package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidSessionKind   = errors.New("invalid session kind")
	ErrOutsideSessionWindow = errors.New("current time is outside the session window")
	ErrAlreadyTimedIn       = errors.New("already timed in for today")
	ErrAlreadyTimedOut      = errors.New("already timed out for today")
	ErrNoTimeInRecord       = errors.New("no time-in record for today")
	ErrHoursTargetNotSet    = errors.New("hours to render has not been set")
	ErrHoursComplete        = errors.New("required hours already completed")
	ErrInvalidProof         = errors.New("invalid attendance proof")
	ErrAttendanceNotFound   = errors.New("attendance record not found")
	ErrSweepTooEarly        = errors.New("absence sweep runs after the working day ends")
)
