package catalog

import "errors"

var (
	ErrHotelExists     = errors.New("owner already registered a hotel")
	ErrNoHotel         = errors.New("owner has no registered hotel")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidRoomType = errors.New("invalid room type")
	ErrRoomNotFound    = errors.New("room not found")
)
