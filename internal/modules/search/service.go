package search

import (
	"context"
	"errors"
	"time"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	policy   domain.AvailabilityPolicy
	horizon  int
	limit    int
}

// NewService builds the search layer. Unlike the direct booking path, search
// works on the fixed-inventory model: every room document stands for
// inventoryPerRoom interchangeable units.
func NewService(bookings BookingRepository, rooms RoomRepository, inventoryPerRoom, horizonDays, suggestionLimit int) *Service {
	if horizonDays <= 0 {
		horizonDays = 30
	}
	if suggestionLimit <= 0 {
		suggestionLimit = 3
	}
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		policy:   domain.FixedInventory(inventoryPerRoom),
		horizon:  horizonDays,
		limit:    suggestionLimit,
	}
}

// SearchRooms lists rooms for a destination annotated with how many units
// remain free over the requested stay. With onlyAvailable set, fully booked
// rooms are dropped from the result.
func (s *Service) SearchRooms(ctx context.Context, destination string, checkIn, checkOut time.Time, onlyAvailable bool) ([]RoomAvailability, error) {
	if !checkIn.IsZero() && !checkOut.IsZero() && !checkIn.Before(checkOut) {
		return nil, ErrValidation
	}

	rooms, err := s.rooms.ListAvailable(ctx, destination)
	if err != nil {
		return nil, err
	}

	out := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		free := s.policy.Units()
		if !checkIn.IsZero() && !checkOut.IsZero() {
			cnt, err := s.bookings.CountOverlapping(ctx, room.ID, checkIn, checkOut)
			if err != nil {
				return nil, err
			}
			free = s.policy.FreeUnits(cnt)
		}

		entry := RoomAvailability{
			Room:           room,
			AvailableRooms: free,
			TotalRooms:     s.policy.Units(),
			IsFullyBooked:  free <= 0,
		}
		if onlyAvailable && entry.IsFullyBooked {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

// SuggestDates scans forward from the requested check-in for the next open
// windows of the same stay length. The probe is a day-by-day walk capped by
// the horizon, stopping early once enough suggestions are collected; results
// come out ordered by distance from the original date.
func (s *Service) SuggestDates(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]DateSuggestion, error) {
	if !checkIn.Before(checkOut) {
		return nil, ErrValidation
	}

	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	stayNights := domain.NightsBetween(checkIn, checkOut)

	suggestions := make([]DateSuggestion, 0, s.limit)
	for i := 1; i <= s.horizon; i++ {
		candIn := checkIn.AddDate(0, 0, i)
		candOut := candIn.AddDate(0, 0, stayNights)

		cnt, err := s.bookings.CountOverlapping(ctx, roomID, candIn, candOut)
		if err != nil {
			return nil, err
		}
		if cnt > 0 {
			continue
		}

		suggestions = append(suggestions, DateSuggestion{
			CheckIn:          candIn,
			CheckOut:         candOut,
			DaysFromOriginal: i,
		})
		if len(suggestions) >= s.limit {
			break
		}
	}

	return suggestions, nil
}
