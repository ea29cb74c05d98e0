package domain

import (
	"errors"
	"time"
)

type RoomType string

const (
	RoomSingleBed   RoomType = "Single Bed"
	RoomDoubleBed   RoomType = "Double Bed"
	RoomLuxury      RoomType = "Luxury Room"
	RoomFamilySuite RoomType = "Family Suite"
)

var ErrUnknownRoomType = errors.New("unknown room type")

func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomSingleBed, RoomDoubleBed, RoomLuxury, RoomFamilySuite:
		return RoomType(s), nil
	}
	return "", ErrUnknownRoomType
}

type Room struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id"`
	RoomType      RoomType  `json:"room_type" validate:"required"`
	PricePerNight float64   `json:"price_per_night" validate:"required,gte=0"`
	Amenities     []string  `json:"amenities,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Hotel *Hotel `json:"hotel,omitempty"`
}
