package http

import (
	"net/http"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/report"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/response"
)

type ReportHandler interface {
	AttendanceExport(w http.ResponseWriter, r *http.Request)
	HoursSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// AttendanceExport implements ReportHandler.
func (h *reportHandlerImpl) AttendanceExport(w http.ResponseWriter, r *http.Request) {
	filter := report.Filter{}
	query := r.URL.Query()

	if v := query.Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := query.Get("date_from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateFrom = &t
		}
	}
	if v := query.Get("date_to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateTo = &t
		}
	}

	data, filename, err := h.reportService.AttendanceXLSX(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Write(data)
}

// HoursSummary implements ReportHandler.
func (h *reportHandlerImpl) HoursSummary(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportService.InternHoursSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}
