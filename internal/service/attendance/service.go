package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/attendance"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/database"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/repository/postgresql"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/service/file"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	userRepo    user.UserRepository
	fileService file.FileService
	notifier    notification.NotificationService

	// now is replaceable in tests so window checks are deterministic
	now func() time.Time

	// runTx wraps a state transition in a database transaction. Also
	// replaceable in tests so the transition paths run against fakes.
	runTx func(ctx context.Context, fn func(tx pgx.Tx) error) error
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
	notifier notification.NotificationService,
) *AttendanceServiceImpl {
	s := &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		userRepo:             userRepo,
		fileService:          fileService,
		notifier:             notifier,
		now:                  time.Now,
	}
	s.runTx = func(ctx context.Context, fn func(tx pgx.Tx) error) error {
		return postgresql.WithTransaction(ctx, s.db, fn)
	}
	return s
}

// dateOf truncates a moment to its calendar date, keeping the location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// appendRemark joins an extra remark onto existing remarks with "; ".
func appendRemark(remarks *string, extra string) *string {
	if remarks == nil || *remarks == "" {
		return &extra
	}
	joined := *remarks + "; " + extra
	return &joined
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.Attendance, error) {
	now := s.now()
	today := dateOf(now)

	window, err := attendance.ResolveWindow(attendance.SessionKind(req.Session))
	if err != nil {
		return attendance.Attendance{}, err
	}

	if !window.Contains(now) {
		return attendance.Attendance{}, attendance.ErrOutsideSessionWindow
	}

	existing, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil && !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	hasExisting := err == nil

	if hasExisting && existing.TimeIn != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyTimedIn
	}

	usr, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get user: %w", err)
	}

	if usr.HoursToRender == nil || *usr.HoursToRender <= 0 {
		return attendance.Attendance{}, attendance.ErrHoursTargetNotSet
	}

	if usr.TotalRenderedHours >= float64(*usr.HoursToRender) {
		return attendance.Attendance{}, attendance.ErrHoursComplete
	}

	// Proof is the last precondition; an intern outside the window hears
	// about the window, not the missing photo.
	if err := req.ValidateProof(); err != nil {
		return attendance.Attendance{}, err
	}

	// The proof is stored before the row commits; remove it again if
	// persisting fails so storage never holds orphans.
	var proofPath string
	if req.FileHeader != nil {
		proofPath, err = s.fileService.UploadAttendanceProof(ctx, req.UserID, today, req.File, req.FileHeader.Filename)
	} else {
		proofPath, err = s.fileService.UploadAttendanceCapture(ctx, req.UserID, today, *req.CameraCapture)
	}
	if err != nil {
		return attendance.Attendance{}, attendance.ErrInvalidProof
	}

	lateMinutes := window.LateFor(now)

	record := attendance.Attendance{
		UserID:      req.UserID,
		Date:        today,
		Session:     window.Kind,
		TimeIn:      &now,
		LateMinutes: lateMinutes,
		Status:      attendance.StatusPending,
		ProofPath:   &proofPath,
		Remarks:     req.Remarks,
	}

	if hasExisting {
		// Reuse the row, e.g. a self-declared absence the intern reverses
		// by showing up within the session window.
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		err = s.AttendanceRepository.Update(ctx, record)
	} else {
		record, err = s.AttendanceRepository.Create(ctx, record)
	}
	if err != nil {
		if delErr := s.fileService.DeleteFile(ctx, proofPath); delErr != nil {
			slog.Warn("failed to remove orphaned proof file", "path", proofPath, "error", delErr)
		}
		return attendance.Attendance{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	s.notifyStaff(ctx, usr, clockInNotification(usr, record, lateMinutes))

	return record, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.Attendance, error) {
	now := s.now()
	today := dateOf(now)

	record, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.Attendance{}, attendance.ErrNoTimeInRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if record.TimeIn == nil || record.IsAbsent {
		return attendance.Attendance{}, attendance.ErrNoTimeInRecord
	}
	if record.TimeOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyTimedOut
	}

	window, err := attendance.ResolveWindow(record.Session)
	if err != nil {
		return attendance.Attendance{}, err
	}

	result := attendance.ComputeHours(*record.TimeIn, now, window)

	record.TimeOut = &now
	record.RenderedHours = &result.Rendered
	record.Overtime = &result.Overtime

	if req.Remarks != nil && *req.Remarks != "" {
		record.Remarks = appendRemark(record.Remarks, *req.Remarks)
	}
	if window.EarlyTimeout(now) {
		record.Remarks = appendRemark(record.Remarks, fmt.Sprintf("Early timeout from %s session", record.Session))
	}

	// Rendered hours are only computed here. The owner's total moves
	// when a reviewer approves the record, never on clock-out.
	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	if usr, err := s.userRepo.GetByID(ctx, req.UserID); err == nil {
		s.notifyStaff(ctx, usr, notification.Notification{
			SenderID: &usr.ID,
			Type:     notification.TypeAttendanceSubmitted,
			Title:    "Attendance submitted",
			Message:  fmt.Sprintf("%s timed out with %.2f rendered hours awaiting review", usr.FullName(), result.Rendered),
			Data:     map[string]interface{}{"attendance_id": record.ID},
		})
	}

	return record, nil
}

// MarkAbsent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAbsent(ctx context.Context, req attendance.MarkAbsentRequest) (attendance.Attendance, error) {
	now := s.now()
	today := dateOf(now)

	_, err := s.AttendanceRepository.GetByUserAndDate(ctx, req.UserID, today)
	if err == nil {
		return attendance.Attendance{}, attendance.ErrAlreadyTimedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	remarks := "marked absent"
	if req.Remarks != nil && *req.Remarks != "" {
		remarks = *req.Remarks
	}

	record := attendance.Attendance{
		UserID:   req.UserID,
		Date:     today,
		Session:  attendance.SessionWhole,
		Status:   attendance.StatusAbsent,
		IsAbsent: true,
		Remarks:  &remarks,
	}

	record, err = s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to save absence: %w", err)
	}

	return record, nil
}

// Review implements attendance.AttendanceService.
//
// This is the single place rendered hours enter or leave an intern's
// total. The record row stays locked while the counted-ness delta is
// applied, so concurrent reviews of the same record serialize.
func (s *AttendanceServiceImpl) Review(ctx context.Context, req attendance.ReviewRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	now := s.now()
	var record attendance.Attendance

	err := s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, req.AttendanceID)
		if err != nil {
			return err
		}

		before := rec.CountedHours()

		if req.Approved {
			rec.Status = attendance.StatusApproved
			rec.ApprovedBy = &req.ReviewerID
			rec.ApprovedAt = &now
		} else {
			rec.Status = attendance.StatusRejected
			rec.ApprovedBy = &req.ReviewerID
			rec.ApprovedAt = &now
			if req.Remarks != nil {
				rec.Remarks = appendRemark(rec.Remarks, *req.Remarks)
			}
		}

		if delta := rec.CountedHours() - before; delta != 0 {
			if err := s.userRepo.AddRenderedHours(txCtx, rec.UserID, delta); err != nil {
				return fmt.Errorf("failed to settle rendered hours: %w", err)
			}
		}

		if err := s.AttendanceRepository.Update(txCtx, rec); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}

		record = rec
		return nil
	})
	if err != nil {
		return attendance.Attendance{}, err
	}

	decision := "approved"
	if !req.Approved {
		decision = "rejected"
	}
	s.notify(ctx, notification.Notification{
		RecipientID: record.UserID,
		SenderID:    &req.ReviewerID,
		Type:        notification.TypeAttendanceReviewed,
		Title:       "Attendance " + decision,
		Message:     fmt.Sprintf("Your attendance for %s was %s", record.Date.Format("January 2, 2006"), decision),
		Data:        map[string]interface{}{"attendance_id": record.ID},
	})

	return record, nil
}

// SoftDelete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SoftDelete(ctx context.Context, id string) error {
	return s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if rec.IsDeleted {
			return nil
		}

		before := rec.CountedHours()
		rec.IsDeleted = true

		if delta := rec.CountedHours() - before; delta != 0 {
			if err := s.userRepo.AddRenderedHours(txCtx, rec.UserID, delta); err != nil {
				return fmt.Errorf("failed to settle rendered hours: %w", err)
			}
		}

		if err := s.AttendanceRepository.Update(txCtx, rec); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}
		return nil
	})
}

// Restore implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Restore(ctx context.Context, id string) error {
	return s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if !rec.IsDeleted {
			return nil
		}

		before := rec.CountedHours()
		rec.IsDeleted = false

		if delta := rec.CountedHours() - before; delta != 0 {
			if err := s.userRepo.AddRenderedHours(txCtx, rec.UserID, delta); err != nil {
				return fmt.Errorf("failed to settle rendered hours: %w", err)
			}
		}

		if err := s.AttendanceRepository.Update(txCtx, rec); err != nil {
			return fmt.Errorf("failed to save attendance: %w", err)
		}
		return nil
	})
}

// Purge implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Purge(ctx context.Context, id string) error {
	var proofPath *string

	err := s.runTx(ctx, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rec, err := s.AttendanceRepository.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if hours := rec.CountedHours(); hours != 0 {
			if err := s.userRepo.AddRenderedHours(txCtx, rec.UserID, -hours); err != nil {
				return fmt.Errorf("failed to settle rendered hours: %w", err)
			}
		}

		if err := s.AttendanceRepository.Delete(txCtx, rec.ID); err != nil {
			return fmt.Errorf("failed to delete attendance: %w", err)
		}

		proofPath = rec.ProofPath
		return nil
	})
	if err != nil {
		return err
	}

	// File cleanup happens after the commit; a leftover file is better
	// than a deleted file for a row that rolled back.
	if proofPath != nil {
		if err := s.fileService.DeleteFile(ctx, *proofPath); err != nil {
			slog.Warn("failed to remove purged proof file", "path", *proofPath, "error", err)
		}
	}

	return nil
}

// RunAbsenceSweep implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RunAbsenceSweep(ctx context.Context, date time.Time) (int64, error) {
	now := s.now()
	day := dateOf(date)

	closing := attendance.EndOfDay.At(day)
	if !dateOf(now).After(day) && now.Before(closing) {
		return 0, attendance.ErrSweepTooEarly
	}

	created, err := s.AttendanceRepository.MarkAbsentees(ctx, day, "automatically marked absent")
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	if created > 0 {
		slog.Info("absence sweep completed", "date", day.Format("2006-01-02"), "marked", created)
	}

	return created, nil
}

// GetMy implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMy(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	return s.AttendanceRepository.ListByUser(ctx, userID)
}

// notify delivers a single notification, logging instead of failing the
// attendance operation when delivery breaks.
func (s *AttendanceServiceImpl) notify(ctx context.Context, n notification.Notification) {
	if err := s.notifier.Notify(ctx, n); err != nil {
		slog.Warn("failed to deliver notification", "type", n.Type, "error", err)
	}
}

// notifyStaff fans a notification out to every reviewing staff member.
func (s *AttendanceServiceImpl) notifyStaff(ctx context.Context, from user.User, n notification.Notification) {
	staff, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		slog.Warn("failed to list staff for notification", "error", err)
		return
	}

	ids := make([]string, 0, len(staff))
	for _, member := range staff {
		if member.ID != from.ID {
			ids = append(ids, member.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	if err := s.notifier.NotifyMany(ctx, ids, n); err != nil {
		slog.Warn("failed to deliver staff notifications", "type", n.Type, "error", err)
	}
}

func clockInNotification(usr user.User, record attendance.Attendance, lateMinutes int) notification.Notification {
	message := fmt.Sprintf("%s timed in on time for the %s session", usr.FullName(), record.Session)
	if lateMinutes > 0 {
		message = fmt.Sprintf("%s timed in %d minute(s) late for the %s session", usr.FullName(), lateMinutes, record.Session)
	}
	return notification.Notification{
		SenderID: &usr.ID,
		Type:     notification.TypeAttendanceSubmitted,
		Title:    "Attendance time-in",
		Message:  message,
		Data:     map[string]interface{}{"attendance_id": record.ID},
	}
}
