package dayoff

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/config"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dayoff"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type DayOffServiceImpl struct {
	dayOffRepo dayoff.DayOffRepository
	cfg        config.DayOffConfig
	now        func() time.Time
}

func NewDayOffService(dayOffRepo dayoff.DayOffRepository, cfg config.DayOffConfig) dayoff.DayOffService {
	return &DayOffServiceImpl{
		dayOffRepo: dayOffRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

// window returns the inclusive [minDate, maxDate] bookable range, date-only,
// in server local time.
func (s *DayOffServiceImpl) window() (time.Time, time.Time) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, s.cfg.MinOffsetDays), today.AddDate(0, 0, s.cfg.MaxOffsetDays)
}

// AvailableDates implements dayoff.DayOffService.
func (s *DayOffServiceImpl) AvailableDates(ctx context.Context) (dayoff.AvailableDatesResponse, error) {
	minDate, maxDate := s.window()

	booked, err := s.dayOffRepo.ListDatesBetween(ctx, minDate, maxDate)
	if err != nil {
		return dayoff.AvailableDatesResponse{}, fmt.Errorf("failed to load booked dates: %w", err)
	}

	taken := make(map[string]struct{}, len(booked))
	for _, d := range booked {
		taken[d.Format(validator.DateLayout)] = struct{}{}
	}

	resp := dayoff.AvailableDatesResponse{
		From: minDate.Format(validator.DateLayout),
		To:   maxDate.Format(validator.DateLayout),
	}
	for d := minDate; !d.After(maxDate); d = d.AddDate(0, 0, 1) {
		key := d.Format(validator.DateLayout)
		if _, ok := taken[key]; ok {
			continue
		}
		resp.Dates = append(resp.Dates, key)
	}

	return resp, nil
}

// Book implements dayoff.DayOffService. The atomic check-and-insert lives in
// the repository; two users racing for one date cannot both succeed.
func (s *DayOffServiceImpl) Book(ctx context.Context, userID string, req dayoff.BookRequest) (dayoff.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return dayoff.BookingResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Date)
	minDate, maxDate := s.window()

	// The wire date is anchored in the window's location so every date
	// AvailableDates offers is accepted here, whatever the server zone.
	date := validator.DateIn(day, minDate.Location())
	if date.Before(minDate) || date.After(maxDate) {
		return dayoff.BookingResponse{}, dayoff.ErrDateOutsideWindow
	}

	// Fast pre-check; the unique constraint still decides races.
	taken, err := s.dayOffRepo.IsDateTaken(ctx, date)
	if err != nil {
		return dayoff.BookingResponse{}, fmt.Errorf("failed to check date availability: %w", err)
	}
	if taken {
		return dayoff.BookingResponse{}, dayoff.ErrDateTaken
	}

	booking, err := s.dayOffRepo.Book(ctx, userID, date)
	if err != nil {
		return dayoff.BookingResponse{}, err
	}

	return dayoff.BookingResponse{
		Date:   booking.Date.Format(validator.DateLayout),
		UserID: booking.UserID,
	}, nil
}

// List implements dayoff.DayOffService.
func (s *DayOffServiceImpl) List(ctx context.Context) ([]dayoff.BookingResponse, error) {
	bookings, err := s.dayOffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	responses := make([]dayoff.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, dayoff.BookingResponse{
			Date:     b.Date.Format(validator.DateLayout),
			UserID:   b.UserID,
			UserName: b.UserName,
		})
	}

	return responses, nil
}

// Cancel implements dayoff.DayOffService.
func (s *DayOffServiceImpl) Cancel(ctx context.Context, dateStr string) error {
	day, ok := validator.IsValidDate(dateStr)
	if !ok {
		return validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}

	return s.dayOffRepo.DeleteByDate(ctx, validator.DateIn(day, s.now().Location()))
}
