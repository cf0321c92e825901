package response

import (
	"errors"
	"net/http"

	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/dayoff"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/operation"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/report"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/tracking"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Tracking domain errors: expected business-rule conflicts
	case errors.Is(err, tracking.ErrShiftAlreadyActive):
		Conflict(w, "A shift is already active, end it first")
	case errors.Is(err, tracking.ErrNoActiveShift):
		Conflict(w, "No active shift")
	case errors.Is(err, tracking.ErrBreakAlreadyActive):
		Conflict(w, "A break is already active, end it first")
	case errors.Is(err, tracking.ErrNoActiveBreak):
		Conflict(w, "No break has been started or it is already over")
	case errors.Is(err, tracking.ErrNoShiftRecorded):
		NotFound(w, "No shift has ever been recorded")

	// Day-off domain errors
	case errors.Is(err, dayoff.ErrDateTaken):
		Conflict(w, "This date is already taken by someone in the department")
	case errors.Is(err, dayoff.ErrDateOutsideWindow):
		BadRequest(w, "Date is outside the bookable window", nil)
	case errors.Is(err, dayoff.ErrBookingNotFound):
		NotFound(w, "Day-off booking not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrExternalIDRequired):
		Unauthorized(w, "External identity is required")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privileges required")

	// Report domain errors
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported report format", nil)

	// Operation domain errors
	case errors.Is(err, operation.ErrInvalidKind):
		BadRequest(w, "Unknown operation kind", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
