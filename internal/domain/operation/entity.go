package operation

import "time"

// Kind identifies what a logged event records.
type Kind string

const (
	KindStartShift    Kind = "start_shift"
	KindEndShift      Kind = "end_shift"
	KindStartBreak    Kind = "start_break"
	KindEndBreak      Kind = "end_break"
	KindPhotoReceived Kind = "photo_received"
)

// Kinds lists every valid operation kind.
func Kinds() []Kind {
	return []Kind{KindStartShift, KindEndShift, KindStartBreak, KindEndBreak, KindPhotoReceived}
}

// IsValid reports whether k is a known operation kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindStartShift, KindEndShift, KindStartBreak, KindEndBreak, KindPhotoReceived:
		return true
	}
	return false
}

// Operation is one immutable fact in the event log. The timestamp is assigned
// by the store at insert time; the serial ID breaks ordering ties between
// events that share a timestamp.
type Operation struct {
	ID        int64
	UserID    string
	Kind      Kind
	CreatedAt time.Time

	// DTO / Join
	UserName *string
}

// Before reports whether o was logged strictly before other, using the
// (created_at, id) order every derivation relies on.
func (o Operation) Before(other Operation) bool {
	if o.CreatedAt.Equal(other.CreatedAt) {
		return o.ID < other.ID
	}
	return o.CreatedAt.Before(other.CreatedAt)
}
