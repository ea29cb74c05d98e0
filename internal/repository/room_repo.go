package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	HotelID       int64     `gorm:"column:hotel_id;index"`
	RoomType      string    `gorm:"column:room_type"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	Amenities     []string  `gorm:"column:amenities;serializer:json"`
	IsAvailable   bool      `gorm:"column:is_available"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:            m.ID,
		HotelID:       m.HotelID,
		RoomType:      domain.RoomType(m.RoomType),
		PricePerNight: m.PricePerNight,
		Amenities:     m.Amenities,
		IsAvailable:   m.IsAvailable,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := roomModel{
		HotelID:       room.HotelID,
		RoomType:      string(room.RoomType),
		PricePerNight: room.PricePerNight,
		Amenities:     room.Amenities,
		IsAvailable:   room.IsAvailable,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

// ListAvailable returns rooms flagged available, optionally filtered by the
// hotel's city. Hotels are joined so callers can render the destination.
func (r *RoomRepository) ListAvailable(ctx context.Context, city string) ([]domain.Room, error) {
	var rows []roomModel
	q := r.db.WithContext(ctx).
		Table("rooms").
		Select("rooms.*").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("rooms.is_available = ?", true)
	if city != "" {
		q = q.Where("LOWER(hotels.city) = LOWER(?)", city)
	}
	tx := q.Order("rooms.id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) GetByHotelID(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rows []roomModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Room, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) ToggleAvailability(ctx context.Context, roomID int64) error {
	tx := r.db.WithContext(ctx).
		Model(&roomModel{}).
		Where("id = ?", roomID).
		Update("is_available", gorm.Expr("NOT is_available"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
