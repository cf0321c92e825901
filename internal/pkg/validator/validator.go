package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// IsValidDate parses a "YYYY-MM-DD" date string. The result is a bare
// calendar date; anchor it with DateIn before comparing against clock times.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(DateLayout, dateStr)
	return date, err == nil
}

// DateIn rebuilds a calendar date at midnight in loc. Wire dates carry no
// zone, so day boundaries must be taken in the clock's location or dates at
// the edges of a range drift by one day.
func DateIn(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
