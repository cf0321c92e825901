package user

import "time"

// User is the identity record behind an external chat identity. Records are
// created lazily the first time any event arrives for an unknown external id;
// the internal ID never changes afterwards.
type User struct {
	ID         string
	ExternalID string
	FullName   *string
	Department *string
	Position   *string
	IsAdmin    bool
	Reminder   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	ShiftActive *bool
}

// DisplayName returns the full name when set, otherwise the external id.
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.ExternalID
}
