package assistant

import "errors"

var (
	ErrEmptyText    = errors.New("message text is empty")
	ErrNoUser       = errors.New("missing user in scope")
	ErrForbidden    = errors.New("role may not update statistics")
	ErrInvalidStats = errors.New("statistics must not be negative")
)
