package booking

import (
	"context"
	"time"

	"staybook/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int64, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
	MarkPaid(ctx context.Context, bookingID int64, method string, status domain.BookingStatus) error
	Cancel(ctx context.Context, bookingID int64, cancelledBy int64, cancelledAt time.Time, reason string, refundAmount float64, refundPercentage int) error
	Delete(ctx context.Context, bookingID int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
