package report

import (
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// Formats the attendance report can be encoded into. The logical table is the
// same in every format; only the serialization differs.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

type AttendanceReportRequest struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
}

// Validate checks date syntax and range order. A request with
// date_from > date_to is rejected here, before the log is ever queried.
func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(r.DateFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must be in YYYY-MM-DD format",
		})
	}

	to, okTo := validator.IsValidDate(r.DateTo)
	if !okTo {
		errs = append(errs, validator.ValidationError{
			Field:   "date_to",
			Message: "date_to must be in YYYY-MM-DD format",
		})
	}

	if okFrom && okTo && from.After(to) {
		errs = append(errs, validator.ValidationError{
			Field:   "date_from",
			Message: "date_from must not be after date_to",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Bounds returns the parsed range anchored at midnight in loc, so day
// boundaries line up with event timestamps from that location. Validate must
// have passed.
func (r *AttendanceReportRequest) Bounds(loc *time.Location) (time.Time, time.Time) {
	from, _ := validator.IsValidDate(r.DateFrom)
	to, _ := validator.IsValidDate(r.DateTo)
	return validator.DateIn(from, loc), validator.DateIn(to, loc)
}

// AttendanceReport is the logical report table: one group per user, each
// group headed by the user's display name. Groups with no sessions in range
// are kept, with an empty row list, so downstream parsers see every user.
type AttendanceReport struct {
	DateFrom    string      `json:"date_from"`
	DateTo      string      `json:"date_to"`
	GeneratedAt string      `json:"generated_at"`
	Groups      []UserGroup `json:"groups"`
}

type UserGroup struct {
	UserID   string       `json:"user_id"`
	UserName string       `json:"user_name"`
	Rows     []SessionRow `json:"rows"`
}

// SessionRow describes one reconstructed shift session.
type SessionRow struct {
	Date       string  `json:"date"`
	ShiftStart string  `json:"shift_start"`
	ShiftEnd   *string `json:"shift_end"`
	BreakTotal string  `json:"break_total"`
}

// IncompleteMarker replaces the end time of a shift that has no end_shift event.
const IncompleteMarker = "incomplete"

// Display layouts for report rows.
const (
	RowDateLayout = "02.01.2006"
	RowTimeLayout = "15:04"
)
