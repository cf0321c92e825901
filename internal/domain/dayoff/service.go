package dayoff

import (
	"context"
)

// DayOffService manages the shared day-off calendar. Bookable dates are
// limited to a configurable window relative to today.
type DayOffService interface {
	// AvailableDates lists the dates within the bookable window that are
	// still free.
	AvailableDates(ctx context.Context) (AvailableDatesResponse, error)

	// Book reserves a date for a user. Dates outside the window are rejected
	// with ErrDateOutsideWindow; already-taken dates with ErrDateTaken.
	Book(ctx context.Context, userID string, req BookRequest) (BookingResponse, error)

	// List returns all bookings for the back office.
	List(ctx context.Context) ([]BookingResponse, error)

	// Cancel frees the booked slot for a date (back-office action).
	Cancel(ctx context.Context, date string) error
}
