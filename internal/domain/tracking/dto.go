package tracking

import "time"

// TimestampLayout is the day-first format used in user-facing messages.
const TimestampLayout = "02.01.2006 15:04:05"

type EventResponse struct {
	Kind       string `json:"kind"`
	RecordedAt string `json:"recorded_at"`
}

type StatusResponse struct {
	ShiftActive bool `json:"shift_active"`
	BreakActive bool `json:"break_active"`
}

type ShiftWindowResponse struct {
	StartedAt string  `json:"started_at"`
	EndedAt   *string `json:"ended_at"`
	Completed bool    `json:"completed"`
}

// FormatTimestamp renders a log timestamp for user-facing messages.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
