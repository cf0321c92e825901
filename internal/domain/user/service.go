package user

import (
	"context"
)

// UserService is the user directory plus the back-office operations over it.
type UserService interface {
	// Identify resolves an external identity, creating the record on first contact.
	Identify(ctx context.Context, externalID string) (User, error)

	// Get returns one user record.
	Get(ctx context.Context, id string) (UserResponse, error)

	// List returns all users with their derived shift-active flag, ordered by
	// display name.
	List(ctx context.Context) ([]UserResponse, error)

	// Update edits profile fields, the admin flag, or the reminder note.
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// Delete removes a user; their operations and bookings cascade away.
	Delete(ctx context.Context, id string) error
}
