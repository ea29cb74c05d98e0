package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

type hotelModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	OwnerID   int64     `gorm:"column:owner_id;index"`
	Name      string    `gorm:"column:name"`
	Address   string    `gorm:"column:address"`
	City      string    `gorm:"column:city;index"`
	Contact   string    `gorm:"column:contact"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (hotelModel) TableName() string { return "hotels" }

func toDomainHotel(m hotelModel) *domain.Hotel {
	return &domain.Hotel{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		Address:   m.Address,
		City:      m.City,
		Contact:   m.Contact,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	m := hotelModel{
		OwnerID: h.OwnerID,
		Name:    h.Name,
		Address: h.Address,
		City:    h.City,
		Contact: h.Contact,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*h = *toDomainHotel(m)
	return nil
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}

func (r *HotelRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error) {
	var m hotelModel
	tx := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainHotel(m), nil
}
