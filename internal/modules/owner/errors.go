package owner

import "errors"

var (
	ErrNoHotel                 = errors.New("owner has no registered hotel")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("booking does not belong to this hotel")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
