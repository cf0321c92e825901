package report

import (
	"context"
)

// ReportService reconstructs shift sessions from the event log over a date
// range. Generation is a pure derivation: identical log contents and
// arguments always produce the identical report.
type ReportService interface {
	// GenerateAttendanceReport builds the logical report table for
	// [DateFrom, DateTo]. Sessions qualify by the calendar date of their
	// start_shift event; a session's end may fall outside the range.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)

	// EncodeCSV renders a generated report as delimited text for download.
	EncodeCSV(report AttendanceReport) ([]byte, error)
}
