package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/attendance"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/report"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

const exportPageSize = 1000

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository

	now func() time.Time
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
) *ReportServiceImpl {
	return &ReportServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

var attendanceHeaders = []string{
	"Date", "Intern", "Session", "Time In", "Time Out",
	"Rendered Hours", "Overtime", "Late Minutes", "Status", "Remarks",
}

// AttendanceXLSX implements report.ReportService.
func (s *ReportServiceImpl) AttendanceXLSX(ctx context.Context, filter report.Filter) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("failed to set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range attendanceHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, "", fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, "", fmt.Errorf("failed to style header: %w", err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "J", 16); err != nil {
		return nil, "", fmt.Errorf("failed to set column widths: %w", err)
	}

	// Page through matching records so large exports stay bounded.
	row := 2
	page := 1
	for {
		listFilter := attendance.ListFilter{
			UserID:   filter.UserID,
			DateFrom: filter.DateFrom,
			DateTo:   filter.DateTo,
			Page:     page,
			PageSize: exportPageSize,
		}

		records, total, err := s.attendanceRepo.List(ctx, listFilter)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list attendance: %w", err)
		}

		for _, rec := range records {
			values := []interface{}{
				rec.Date.Format("2006-01-02"),
				derefOr(rec.UserName, rec.UserID),
				string(rec.Session),
				formatClock(rec.TimeIn),
				formatClock(rec.TimeOut),
				derefFloat(rec.RenderedHours),
				derefFloat(rec.Overtime),
				rec.LateMinutes,
				string(rec.Status),
				derefOr(rec.Remarks, ""),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return nil, "", fmt.Errorf("failed to write row: %w", err)
				}
			}
			row++
		}

		if page*exportPageSize >= total || len(records) == 0 {
			break
		}
		page++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to render spreadsheet: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", s.now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// InternHoursSummary implements report.ReportService.
func (s *ReportServiceImpl) InternHoursSummary(ctx context.Context) ([]report.HoursSummary, error) {
	approved := user.StatusApproved
	interns, err := s.userRepo.ListByRole(ctx, user.RoleIntern, &approved)
	if err != nil {
		return nil, fmt.Errorf("failed to list interns: %w", err)
	}

	summaries := make([]report.HoursSummary, 0, len(interns))
	for _, intern := range interns {
		summary := report.HoursSummary{
			UserID:             intern.ID,
			Name:               intern.FullName(),
			Email:              intern.Email,
			HoursToRender:      intern.HoursToRender,
			TotalRenderedHours: intern.TotalRenderedHours,
			Completed:          intern.HoursComplete(),
		}
		if intern.HoursToRender != nil {
			remaining := float64(*intern.HoursToRender) - intern.TotalRenderedHours
			if remaining < 0 {
				remaining = 0
			}
			summary.RemainingHours = remaining
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func derefFloat(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}
