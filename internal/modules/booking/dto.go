package booking

import "time"

type CheckAvailabilityRequest struct {
	Room         int64  `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type CreateBookingRequest struct {
	Room         int64  `json:"room" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	Guests       int    `json:"guests" binding:"required,gt=0"`
}

type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

type PayRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// parseDate accepts the wire format used by the client (calendar date) and
// falls back to RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
