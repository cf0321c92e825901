package http

import (
	"fmt"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/handler/http/response"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type ReportHandler interface {
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetAttendanceReport handles GET /reports/attendance. The format parameter
// selects the serialization of the one logical table: json (default) or csv
// as a downloadable document.
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req := report.AttendanceReportRequest{
		DateFrom: r.URL.Query().Get("date_from"),
		DateTo:   r.URL.Query().Get("date_to"),
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = report.FormatJSON
	}
	if !validator.IsInSlice(format, []string{report.FormatJSON, report.FormatCSV}) {
		response.HandleError(w, report.ErrUnsupportedFormat)
		return
	}

	result, err := h.reportService.GenerateAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if format == report.FormatCSV {
		data, err := h.reportService.EncodeCSV(result)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		filename := fmt.Sprintf("attendance_%s_%s.csv", result.DateFrom, result.DateTo)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	response.Success(w, result)
}
