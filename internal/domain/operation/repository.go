package operation

import (
	"context"
	"time"
)

// OperationRepository is the append-only event log store. Events are never
// updated or deleted; every query returns them in ascending
// (created_at, id) order unless stated otherwise.
type OperationRepository interface {
	// Append inserts one event with a store-assigned timestamp and returns it.
	Append(ctx context.Context, userID string, kind Kind) (Operation, error)

	// LastOf returns the most recent event of the given kind for the user,
	// or nil if none exists.
	LastOf(ctx context.Context, userID string, kind Kind) (*Operation, error)

	// CountAfter counts events of the given kind logged strictly after the
	// reference event.
	CountAfter(ctx context.Context, userID string, kind Kind, after Operation) (int64, error)

	// FirstAfter returns the earliest event of the given kind logged strictly
	// after the reference event, or nil if none exists.
	FirstAfter(ctx context.Context, userID string, kind Kind, after Operation) (*Operation, error)

	// ListBetween returns matching events with created_at in [from, to],
	// both bounds inclusive.
	ListBetween(ctx context.Context, userID string, kinds []Kind, from, to time.Time) ([]Operation, error)

	// ListByDayRange returns events of the given kind whose calendar date
	// falls within [fromDay, toDay].
	ListByDayRange(ctx context.Context, userID string, kind Kind, fromDay, toDay time.Time) ([]Operation, error)

	// List retrieves events with filters and pagination for the back office.
	List(ctx context.Context, filter ListFilter) ([]Operation, int64, error)
}

// ListFilter narrows the back-office event listing.
type ListFilter struct {
	UserID *string
	Kind   *Kind
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}
