package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/operation"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
)

type ReportServiceImpl struct {
	operationRepo operation.OperationRepository
	userRepo      user.UserRepository
	now           func() time.Time
}

func NewReportService(operationRepo operation.OperationRepository, userRepo user.UserRepository) report.ReportService {
	return &ReportServiceImpl{
		operationRepo: operationRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	// An inverted range never touches the log.
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}
	from, to := req.Bounds(s.now().Location())

	users, err := s.userRepo.ListOrdered(ctx)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list users: %w", err)
	}

	result := report.AttendanceReport{
		DateFrom:    req.DateFrom,
		DateTo:      req.DateTo,
		GeneratedAt: s.now().Format(time.RFC3339),
		Groups:      make([]report.UserGroup, 0, len(users)),
	}

	for _, u := range users {
		group, err := s.buildUserGroup(ctx, u, from, to)
		if err != nil {
			return report.AttendanceReport{}, err
		}
		// Users without sessions in range keep their header and an empty row
		// list, so the downstream parser always sees every user.
		result.Groups = append(result.Groups, group)
	}

	return result, nil
}

// buildUserGroup reconstructs every shift session whose start falls in the
// date range and totals the break time inside each one.
func (s *ReportServiceImpl) buildUserGroup(ctx context.Context, u user.User, from, to time.Time) (report.UserGroup, error) {
	group := report.UserGroup{
		UserID:   u.ID,
		UserName: u.DisplayName(),
		Rows:     []report.SessionRow{},
	}

	starts, err := s.operationRepo.ListByDayRange(ctx, u.ID, operation.KindStartShift, from, to)
	if err != nil {
		return report.UserGroup{}, fmt.Errorf("failed to list shift starts for %s: %w", u.ID, err)
	}

	for _, start := range starts {
		// The session end is the earliest end_shift after this start, even
		// when it falls outside the requested range.
		end, err := s.operationRepo.FirstAfter(ctx, u.ID, operation.KindEndShift, start)
		if err != nil {
			return report.UserGroup{}, fmt.Errorf("failed to find shift end for %s: %w", u.ID, err)
		}

		breakUpper := s.now()
		if end != nil {
			breakUpper = end.CreatedAt
		}

		breakEvents, err := s.operationRepo.ListBetween(
			ctx, u.ID,
			[]operation.Kind{operation.KindStartBreak, operation.KindEndBreak},
			start.CreatedAt, breakUpper,
		)
		if err != nil {
			return report.UserGroup{}, fmt.Errorf("failed to list break events for %s: %w", u.ID, err)
		}

		row := report.SessionRow{
			Date:       start.CreatedAt.Format(report.RowDateLayout),
			ShiftStart: start.CreatedAt.Format(report.RowTimeLayout),
			BreakTotal: FormatBreakTotal(PairBreaks(breakEvents)),
		}
		if end != nil {
			endTime := end.CreatedAt.Format(report.RowTimeLayout)
			row.ShiftEnd = &endTime
		}

		group.Rows = append(group.Rows, row)
	}

	return group, nil
}

// PairBreaks totals break time with a single left-to-right scan: each
// start_break claims the next unclaimed end_break, and a trailing start with
// no end contributes nothing. Breaks are well-nested by the single-active-
// break rule, so one pending slot suffices.
func PairBreaks(events []operation.Operation) time.Duration {
	var total time.Duration
	var pending *operation.Operation

	for i := range events {
		ev := events[i]
		switch ev.Kind {
		case operation.KindStartBreak:
			if pending == nil {
				pending = &events[i]
			}
		case operation.KindEndBreak:
			if pending != nil {
				total += ev.CreatedAt.Sub(pending.CreatedAt)
				pending = nil
			}
		}
	}

	return total
}

// FormatBreakTotal renders a break duration as minutes:seconds.
func FormatBreakTotal(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	totalSeconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
