package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// IsTerminal reports whether no further status transition is permitted.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCancelled || s == BookingCompleted
}

const (
	PaymentPayAtHotel = "Pay At Hotel"
	PaymentStripe     = "Stripe"
)

type Booking struct {
	ID            int64         `json:"id"`
	Reference     string        `json:"reference"`
	UserID        int64         `json:"user_id" validate:"required"`
	RoomID        int64         `json:"room_id" validate:"required"`
	HotelID       int64         `json:"hotel_id" validate:"required"`
	CheckInDate   time.Time     `json:"check_in_date" validate:"required"`
	CheckOutDate  time.Time     `json:"check_out_date" validate:"required"`
	Guests        int           `json:"guests" validate:"required,gt=0"`
	TotalPrice    float64       `json:"total_price" validate:"gte=0"`
	Status        BookingStatus `json:"status"`
	PaymentMethod string        `json:"payment_method"`
	IsPaid        bool          `json:"is_paid"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`

	// Cancellation block: set together on cancel, never partially.
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledBy        *int64     `json:"cancelled_by,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	RefundAmount       float64    `json:"refund_amount,omitempty"`
	RefundPercentage   int        `json:"refund_percentage,omitempty"`

	// Relations
	User *User `json:"user,omitempty"`
	Room *Room `json:"room,omitempty"`
}

// Nights is the billed night count for the stay.
func (b *Booking) Nights() int {
	return NightsBetween(b.CheckInDate, b.CheckOutDate)
}

// NightsBetween computes ceil((out - in) / 24h) with a floor of one night,
// so a 36-hour stay bills as 2 nights.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 1
	}
	nights := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// Overlaps reports whether the stay intersects [checkIn, checkOut].
// Inclusive on both ends: ranges that only touch at the checkout/checkin
// boundary still count as overlapping.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !b.CheckInDate.After(checkOut) && !b.CheckOutDate.Before(checkIn)
}
