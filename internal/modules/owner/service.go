package owner

import (
	"context"
	"errors"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	bookings  BookingRepository
	hotels    HotelRepository
	exportDir string
}

// NewService builds the owner-facing layer. exportDir is where booking
// export snapshots are kept; empty disables snapshots.
func NewService(bookings BookingRepository, hotels HotelRepository, exportDir string) *Service {
	return &Service{bookings: bookings, hotels: hotels, exportDir: exportDir}
}

func (s *Service) hotelOf(ctx context.Context, ownerID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoHotel
		}
		return nil, err
	}
	return hotel, nil
}

func (s *Service) ListHotelBookings(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	hotel, err := s.hotelOf(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.bookings.GetByHotelID(ctx, hotel.ID)
}

// UpdateBookingStatus lets the hotel owner move a pending booking to
// confirmed, cancelled or completed. Terminal bookings are immutable.
func (s *Service) UpdateBookingStatus(ctx context.Context, ownerID, bookingID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	hotel, err := s.hotelOf(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.HotelID != hotel.ID {
		return nil, ErrForbidden
	}

	if b.Status.IsTerminal() {
		return nil, ErrInvalidStatusTransition
	}
	switch newStatus {
	case domain.BookingConfirmed, domain.BookingCancelled, domain.BookingCompleted:
	default:
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, bookingID)
}
