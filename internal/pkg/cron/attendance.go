package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceSvc attendance.AttendanceService
}

func NewAttendanceJobs(attendanceSvc attendance.AttendanceService) *AttendanceJobs {
	return &AttendanceJobs{attendanceSvc: attendanceSvc}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("absence_sweep", 1*time.Hour, j.SweepAbsentees)
}

// SweepAbsentees marks interns without an attendance record for today as
// absent. The service refuses to run before the working day closes, which
// makes the hourly tick a no-op until evening.
func (j *AttendanceJobs) SweepAbsentees(ctx context.Context) error {
	today := time.Now()

	marked, err := j.attendanceSvc.RunAbsenceSweep(ctx, today)
	if err != nil {
		if errors.Is(err, attendance.ErrSweepTooEarly) {
			return nil
		}
		return err
	}

	if marked > 0 {
		slog.Info("Cron: Marked absent interns", "count", marked, "date", today.Format("2006-01-02"))
	}
	return nil
}
