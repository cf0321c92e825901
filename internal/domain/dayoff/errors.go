package dayoff

import "errors"

var (
	ErrDateTaken         = errors.New("this date is already taken by someone in the department")
	ErrDateOutsideWindow = errors.New("date is outside the bookable window")
	ErrBookingNotFound   = errors.New("day-off booking not found")
)
