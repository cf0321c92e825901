package tracking

import "errors"

// Tracking domain errors. These are expected business-rule conflicts, not
// failures: the log itself stays untouched when one is returned.
var (
	ErrShiftAlreadyActive = errors.New("a shift is already active, end it first")
	ErrNoActiveShift      = errors.New("no active shift")
	ErrBreakAlreadyActive = errors.New("a break is already active, end it first")
	ErrNoActiveBreak      = errors.New("no break has been started or it is already over")
	ErrNoShiftRecorded    = errors.New("no shift has ever been recorded")
)
