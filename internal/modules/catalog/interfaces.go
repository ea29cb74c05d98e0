package catalog

import (
	"context"

	"staybook/internal/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListAvailable(ctx context.Context, city string) ([]domain.Room, error)
	GetByHotelID(ctx context.Context, hotelID int64) ([]domain.Room, error)
	ToggleAvailability(ctx context.Context, roomID int64) error
}
