package search

import (
	"time"

	"staybook/internal/domain"
)

type RoomAvailability struct {
	Room           domain.Room `json:"room"`
	AvailableRooms int         `json:"availableRooms"`
	TotalRooms     int         `json:"totalRooms"`
	IsFullyBooked  bool        `json:"isFullyBooked"`
}

type DateSuggestion struct {
	CheckIn          time.Time `json:"checkIn"`
	CheckOut         time.Time `json:"checkOut"`
	DaysFromOriginal int       `json:"daysFromOriginal"`
}

// parseDate accepts a calendar date or RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
