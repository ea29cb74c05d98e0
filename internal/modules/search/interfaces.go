package search

import (
	"context"
	"time"

	"staybook/internal/domain"
)

type BookingRepository interface {
	CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int64, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListAvailable(ctx context.Context, city string) ([]domain.Room, error)
}
