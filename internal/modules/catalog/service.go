package catalog

import (
	"context"
	"errors"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	hotels HotelRepository
	rooms  RoomRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

// RegisterHotel creates the owner's hotel. One hotel per owner account.
func (s *Service) RegisterHotel(ctx context.Context, ownerID int64, req RegisterHotelRequest) (*domain.Hotel, error) {
	if _, err := s.hotels.GetByOwnerID(ctx, ownerID); err == nil {
		return nil, ErrHotelExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hotel := &domain.Hotel{
		OwnerID: ownerID,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Contact: req.Contact,
	}

	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) CreateRoom(ctx context.Context, ownerID int64, req CreateRoomRequest) (*domain.Room, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoHotel
		}
		return nil, err
	}

	roomType, err := domain.ParseRoomType(req.RoomType)
	if err != nil {
		return nil, ErrInvalidRoomType
	}

	room := &domain.Room{
		HotelID:       hotel.ID,
		RoomType:      roomType,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		IsAvailable:   true,
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, city string) ([]domain.Room, error) {
	return s.rooms.ListAvailable(ctx, city)
}

func (s *Service) ListOwnerRooms(ctx context.Context, ownerID int64) ([]domain.Room, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoHotel
		}
		return nil, err
	}
	return s.rooms.GetByHotelID(ctx, hotel.ID)
}

// ToggleRoomAvailability flips the listing flag after an ownership check.
func (s *Service) ToggleRoomAvailability(ctx context.Context, ownerID, roomID int64) error {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}

	hotel, err := s.hotels.GetByID(ctx, room.HotelID)
	if err != nil {
		return err
	}
	if hotel.OwnerID != ownerID {
		return ErrForbidden
	}

	return s.rooms.ToggleAvailability(ctx, roomID)
}
