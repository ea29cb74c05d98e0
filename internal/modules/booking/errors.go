package booking

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrRoomUnavailable  = errors.New("room is not available for the selected dates")
	ErrNotFound         = errors.New("booking not found")
	ErrForbidden        = errors.New("booking does not belong to this user")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrCompleted        = errors.New("completed bookings cannot be cancelled")
	ErrStayEnded        = errors.New("stay has already ended")
	ErrTerminalState    = errors.New("booking is in a terminal state")
	ErrStillActive      = errors.New("booking is still active")
)
