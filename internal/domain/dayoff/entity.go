package dayoff

import "time"

// Booking reserves one calendar date. The slot is shared across all users:
// at most one booking may exist per date, regardless of who holds it.
type Booking struct {
	ID        int64
	UserID    string
	Date      time.Time
	CreatedAt time.Time

	// DTO / Join
	UserName *string
}
