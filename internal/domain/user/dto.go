package user

import (
	"github.com/shiftdesk/shiftdesk-backend-go/internal/pkg/validator"
)

type UpdateUserRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	IsAdmin    *bool   `json:"is_admin"`
	Reminder   *string `json:"reminder"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "user id is required",
		})
	}
	if r.FullName == nil && r.Department == nil && r.Position == nil && r.IsAdmin == nil && r.Reminder == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one field must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID          string  `json:"id"`
	ExternalID  string  `json:"external_id"`
	FullName    *string `json:"full_name"`
	Department  *string `json:"department"`
	Position    *string `json:"position"`
	IsAdmin     bool    `json:"is_admin"`
	Reminder    *string `json:"reminder"`
	ShiftActive *bool   `json:"shift_active,omitempty"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		ExternalID:  u.ExternalID,
		FullName:    u.FullName,
		Department:  u.Department,
		Position:    u.Position,
		IsAdmin:     u.IsAdmin,
		Reminder:    u.Reminder,
		ShiftActive: u.ShiftActive,
	}
}
