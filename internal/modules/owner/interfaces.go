package owner

import (
	"context"

	"staybook/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByHotelID(ctx context.Context, hotelID int64) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
}

type HotelRepository interface {
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error)
}
