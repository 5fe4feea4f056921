package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/attendance"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const attendanceColumns = `a.id, a.user_id, a.date, a.session, a.time_in, a.time_out,
			  a.rendered_hours, a.overtime, a.late_minutes, a.status, a.is_absent, a.is_deleted,
			  a.proof_path, a.remarks, a.approved_by, a.approved_at, a.created_at, a.updated_at`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.Session,
		&a.TimeIn,
		&a.TimeOut,
		&a.RenderedHours,
		&a.Overtime,
		&a.LateMinutes,
		&a.Status,
		&a.IsAbsent,
		&a.IsDeleted,
		&a.ProofPath,
		&a.Remarks,
		&a.ApprovedBy,
		&a.ApprovedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}
	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendances AS a (user_id, date, session, time_in, time_out, rendered_hours,
									  overtime, late_minutes, status, is_absent, is_deleted,
									  proof_path, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + attendanceColumns

	return scanAttendance(q.QueryRow(ctx, insertQuery,
		a.UserID,
		a.Date,
		a.Session,
		a.TimeIn,
		a.TimeOut,
		a.RenderedHours,
		a.Overtime,
		a.LateMinutes,
		a.Status,
		a.IsAbsent,
		a.IsDeleted,
		a.ProofPath,
		a.Remarks,
	))
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

// GetByIDForUpdate implements attendance.AttendanceRepository.
// Only meaningful inside a transaction; the lock holds until commit.
func (r *attendanceRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances a WHERE a.id = $1 FOR UPDATE OF a`
	return scanAttendance(q.QueryRow(ctx, query, id))
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.date = $2 AND a.is_deleted = FALSE`

	return scanAttendance(q.QueryRow(ctx, query, userID, date))
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, a attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE attendances
		SET session = $1, time_in = $2, time_out = $3, rendered_hours = $4, overtime = $5,
			late_minutes = $6, status = $7, is_absent = $8, is_deleted = $9, proof_path = $10,
			remarks = $11, approved_by = $12, approved_at = $13, updated_at = NOW()
		WHERE id = $14
	`

	tag, err := q.Exec(ctx, updateQuery,
		a.Session,
		a.TimeIn,
		a.TimeOut,
		a.RenderedHours,
		a.Overtime,
		a.LateMinutes,
		a.Status,
		a.IsAbsent,
		a.IsDeleted,
		a.ProofPath,
		a.Remarks,
		a.ApprovedBy,
		a.ApprovedAt,
		a.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, int, error) {
	q := GetQuerier(ctx, r.db)
	filter.Normalize()

	where := `WHERE a.is_deleted = $1`
	args := []interface{}{filter.Deleted}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		where += fmt.Sprintf(" AND a.user_id = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND a.status = $%d", len(args))
	}
	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		where += fmt.Sprintf(" AND a.date >= $%d", len(args))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		where += fmt.Sprintf(" AND a.date <= $%d", len(args))
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM attendances a ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.PageSize, (filter.Page-1)*filter.PageSize)
	listQuery := `SELECT ` + attendanceColumns + `,
			  u.first_name || ' ' || u.last_name AS user_name
		FROM attendances a
		JOIN users u ON u.id = a.user_id ` + where +
		fmt.Sprintf(` ORDER BY a.date DESC, a.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Date,
			&a.Session,
			&a.TimeIn,
			&a.TimeOut,
			&a.RenderedHours,
			&a.Overtime,
			&a.LateMinutes,
			&a.Status,
			&a.IsAbsent,
			&a.IsDeleted,
			&a.ProofPath,
			&a.Remarks,
			&a.ApprovedBy,
			&a.ApprovedAt,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.UserName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, a)
	}

	return records, total, rows.Err()
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.user_id = $1 AND a.is_deleted = FALSE
		ORDER BY a.date DESC`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// MarkAbsentees implements attendance.AttendanceRepository.
// The partial unique index on (user_id, date) makes concurrent sweeps
// collapse into one set of inserts.
func (r *attendanceRepositoryImpl) MarkAbsentees(ctx context.Context, date time.Time, remarks string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO attendances (user_id, date, session, status, is_absent, remarks)
		SELECT u.id, $1, 'whole', 'Absent', TRUE, $2
		FROM users u
		WHERE u.role = 'intern'
		  AND u.status = 'Approved'
		  AND NOT EXISTS (
			SELECT 1 FROM attendances a
			WHERE a.user_id = u.id AND a.date = $1 AND a.is_deleted = FALSE
		  )
		ON CONFLICT (user_id, date) WHERE NOT is_deleted DO NOTHING
	`

	tag, err := q.Exec(ctx, insertQuery, date, remarks)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
