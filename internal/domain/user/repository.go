package user

import (
	"context"
)

type UserRepository interface {
	// GetOrCreateByExternalID resolves an external identity to a user record,
	// creating one on first contact.
	GetOrCreateByExternalID(ctx context.Context, externalID string) (User, error)

	GetByID(ctx context.Context, id string) (User, error)

	// ListOrdered returns every user ordered by display name; the report
	// generator and the back office both rely on that ordering.
	ListOrdered(ctx context.Context) ([]User, error)

	Update(ctx context.Context, req UpdateUserRequest) (User, error)

	// Delete removes a user record; operations and day-off bookings cascade.
	Delete(ctx context.Context, id string) error
}
