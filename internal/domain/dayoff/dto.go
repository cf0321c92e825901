package dayoff

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type BookRequest struct {
	Date string `json:"date"`
}

func (r *BookRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BookingResponse struct {
	Date     string  `json:"date"`
	UserID   string  `json:"user_id"`
	UserName *string `json:"user_name,omitempty"`
}

type AvailableDatesResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Dates []string `json:"dates"`
}
