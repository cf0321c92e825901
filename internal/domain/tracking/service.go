package tracking

import (
	"context"
)

// TrackingService derives shift/break state from the append-only event log
// and guards the writes the chat front end triggers. State is never stored:
// a shift or break is active iff its latest start event has no matching end
// event after it.
type TrackingService interface {
	// IsShiftActive reports whether the user's latest start_shift has no
	// end_shift after it.
	IsShiftActive(ctx context.Context, userID string) (bool, error)

	// IsBreakActive applies the same rule to start_break/end_break.
	IsBreakActive(ctx context.Context, userID string) (bool, error)

	// LastShiftWindow returns the latest shift's start and, when the shift is
	// over, its end. ErrNoShiftRecorded when the user never started a shift.
	LastShiftWindow(ctx context.Context, userID string) (ShiftWindowResponse, error)

	// Status combines both activity flags for the front end's menu rendering.
	Status(ctx context.Context, userID string) (StatusResponse, error)

	// StartShift appends start_shift unless a shift is already active.
	StartShift(ctx context.Context, userID string) (EventResponse, error)

	// EndShift appends end_shift unless no shift is active.
	EndShift(ctx context.Context, userID string) (EventResponse, error)

	// StartBreak appends start_break; requires an active shift and no active break.
	StartBreak(ctx context.Context, userID string) (EventResponse, error)

	// EndBreak appends end_break; requires an active shift and an active break.
	EndBreak(ctx context.Context, userID string) (EventResponse, error)

	// SubmitPhoto appends photo_received; requires an active shift.
	SubmitPhoto(ctx context.Context, userID string) (EventResponse, error)
}
