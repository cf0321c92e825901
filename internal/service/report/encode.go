package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
)

// EncodeCSV implements report.ReportService. The delimited layout mirrors the
// logical table: one name row per user group, then one row per session. Empty
// groups keep their name row. Spreadsheet styling stays with external
// exporters; they consume the same logical table via JSON.
func (s *ReportServiceImpl) EncodeCSV(rep report.AttendanceReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"date", "shift_start", "shift_end", "break_total"}

	for _, group := range rep.Groups {
		if err := w.Write([]string{group.UserName}); err != nil {
			return nil, fmt.Errorf("failed to write group header: %w", err)
		}
		if err := w.Write(header); err != nil {
			return nil, fmt.Errorf("failed to write column header: %w", err)
		}
		for _, row := range group.Rows {
			end := report.IncompleteMarker
			if row.ShiftEnd != nil {
				end = *row.ShiftEnd
			}
			if err := w.Write([]string{row.Date, row.ShiftStart, end, row.BreakTotal}); err != nil {
				return nil, fmt.Errorf("failed to write session row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
