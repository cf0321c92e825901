package dayoff

import (
	"context"
	"time"
)

type DayOffRepository interface {
	// Book inserts a booking for the date. The storage layer enforces the
	// one-booking-per-date rule atomically; a concurrent duplicate surfaces
	// as ErrDateTaken, never as two successes.
	Book(ctx context.Context, userID string, date time.Time) (Booking, error)

	// IsDateTaken reports whether any booking exists for the date, across all users.
	IsDateTaken(ctx context.Context, date time.Time) (bool, error)

	// ListDatesBetween returns booked dates within [minDate, maxDate], ascending.
	ListDatesBetween(ctx context.Context, minDate, maxDate time.Time) ([]time.Time, error)

	// List returns every booking with its owner, ordered by date, for the back office.
	List(ctx context.Context) ([]Booking, error)

	// DeleteByDate removes the booking for a date, freeing the slot.
	DeleteByDate(ctx context.Context, date time.Time) error
}
