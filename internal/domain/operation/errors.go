package operation

import "errors"

var (
	ErrInvalidKind = errors.New("unknown operation kind")
)
