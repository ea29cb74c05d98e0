package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

var ErrNotFound = errors.New("record not found")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	Reference          string     `gorm:"column:reference;uniqueIndex"`
	UserID             int64      `gorm:"column:user_id;index"`
	RoomID             int64      `gorm:"column:room_id;index"`
	HotelID            int64      `gorm:"column:hotel_id;index"`
	CheckInDate        time.Time  `gorm:"column:check_in_date"`
	CheckOutDate       time.Time  `gorm:"column:check_out_date"`
	Guests             int        `gorm:"column:guests"`
	TotalPrice         float64    `gorm:"column:total_price"`
	Status             string     `gorm:"column:status"`
	PaymentMethod      string     `gorm:"column:payment_method"`
	IsPaid             bool       `gorm:"column:is_paid"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	CancelledBy        *int64     `gorm:"column:cancelled_by"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	RefundAmount       float64    `gorm:"column:refund_amount"`
	RefundPercentage   int        `gorm:"column:refund_percentage"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var reason string
	if m.CancellationReason != nil {
		reason = *m.CancellationReason
	}

	return &domain.Booking{
		ID:                 m.ID,
		Reference:          m.Reference,
		UserID:             m.UserID,
		RoomID:             m.RoomID,
		HotelID:            m.HotelID,
		CheckInDate:        m.CheckInDate,
		CheckOutDate:       m.CheckOutDate,
		Guests:             m.Guests,
		TotalPrice:         m.TotalPrice,
		Status:             domain.BookingStatus(m.Status),
		PaymentMethod:      m.PaymentMethod,
		IsPaid:             m.IsPaid,
		CancelledAt:        m.CancelledAt,
		CancelledBy:        m.CancelledBy,
		CancellationReason: reason,
		RefundAmount:       m.RefundAmount,
		RefundPercentage:   m.RefundPercentage,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var reason *string
	if b.CancellationReason != "" {
		v := b.CancellationReason
		reason = &v
	}

	return bookingModel{
		ID:                 b.ID,
		Reference:          b.Reference,
		UserID:             b.UserID,
		RoomID:             b.RoomID,
		HotelID:            b.HotelID,
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		Guests:             b.Guests,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		PaymentMethod:      b.PaymentMethod,
		IsPaid:             b.IsPaid,
		CancelledAt:        b.CancelledAt,
		CancelledBy:        b.CancelledBy,
		CancellationReason: reason,
		RefundAmount:       b.RefundAmount,
		RefundPercentage:   b.RefundPercentage,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CountOverlapping counts pending/confirmed bookings for the room whose
// stay intersects [checkIn, checkOut]. Both boundaries are inclusive:
// an existing checkout on the query's check-in day still conflicts.
func (r *BookingRepository) CountOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", []string{string(domain.BookingPending), string(domain.BookingConfirmed)}).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByHotelID(ctx context.Context, hotelID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) MarkPaid(ctx context.Context, bookingID int64, method string, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"is_paid":        true,
			"payment_method": method,
			"status":         string(status),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Cancel writes the whole cancellation block and the status flip in a
// single UPDATE so the fields stay all-or-nothing.
func (r *BookingRepository) Cancel(ctx context.Context, bookingID int64, cancelledBy int64, cancelledAt time.Time, reason string, refundAmount float64, refundPercentage int) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":              string(domain.BookingCancelled),
			"cancelled_at":        cancelledAt,
			"cancelled_by":        cancelledBy,
			"cancellation_reason": reason,
			"refund_amount":       refundAmount,
			"refund_percentage":   refundPercentage,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, bookingID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
