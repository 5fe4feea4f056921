package report

import "context"

// ReportService produces staff-facing exports and summaries.
type ReportService interface {
	// AttendanceXLSX renders attendance records matching the filter as a
	// spreadsheet; returns the file bytes and a suggested filename
	AttendanceXLSX(ctx context.Context, filter Filter) ([]byte, string, error)

	// InternHoursSummary lists every approved intern's hours progress
	InternHoursSummary(ctx context.Context) ([]HoursSummary, error)
}
