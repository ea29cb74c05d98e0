package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"staybook/internal/domain"
	"staybook/internal/metrics"
	"staybook/internal/notification"
	"staybook/internal/repository"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	hotels   HotelRepository
	users    UserRepository
	notifs   notification.Notifier
	policy   domain.AvailabilityPolicy
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	hotels HotelRepository,
	users UserRepository,
	notifs notification.Notifier,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		hotels:   hotels,
		users:    users,
		notifs:   notifs,
		// The direct booking path treats a room document as one unit.
		policy: domain.BinaryAvailability(),
	}
}

// CheckAvailability reports whether the room can take a booking over
// [checkIn, checkOut] under the binary capacity model.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, ErrValidation
	}

	cnt, err := s.bookings.CountOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}

	available := s.policy.Available(cnt)
	metrics.IncAvailabilityCheck(available)
	return available, nil
}

func (s *Service) CreateBooking(ctx context.Context, userID int64, roomID int64, checkIn, checkOut time.Time, guests int) (*domain.Booking, error) {
	if !checkIn.Before(checkOut) || guests <= 0 {
		return nil, ErrValidation
	}

	ok, err := s.CheckAvailability(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomUnavailable
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	nights := domain.NightsBetween(checkIn, checkOut)
	total := room.PricePerNight * float64(nights)

	b := &domain.Booking{
		Reference:     uuid.NewString(),
		UserID:        userID,
		RoomID:        roomID,
		HotelID:       room.HotelID,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Guests:        guests,
		TotalPrice:    total,
		Status:        domain.BookingPending,
		PaymentMethod: domain.PaymentPayAtHotel,
		IsPaid:        false,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// The availability check and the insert are not atomic; on Postgres
		// the no-overbooking exclusion constraint catches the loser of a
		// concurrent race.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23P01" || pgErr.Code == "23505") {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	metrics.IncBookingCreated()

	// Best-effort side effects; failures never roll back the booking.
	if s.notifs != nil {
		if hotel, err := s.hotels.GetByID(ctx, b.HotelID); err == nil {
			_ = s.notifs.NotifyBookingCreated(ctx, hotel.OwnerID, b)
		}
		if user, err := s.users.GetByID(ctx, userID); err == nil {
			_ = s.notifs.SendBookingConfirmation(ctx, user.Email, b)
		}
	}

	return b, nil
}

func (s *Service) GetUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.GetByUserID(ctx, userID)
}

// getOwned loads a booking and checks it belongs to the acting user.
func (s *Service) getOwned(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// CancelBooking cancels a guest's own booking and computes the refund from
// the time remaining until check-in. Each precondition fails distinctly.
func (s *Service) CancelBooking(ctx context.Context, bookingID, userID int64, reason string) (*domain.Booking, RefundQuote, error) {
	b, err := s.getOwned(ctx, bookingID, userID)
	if err != nil {
		return nil, RefundQuote{}, err
	}
	if b.Status == domain.BookingCancelled {
		return nil, RefundQuote{}, ErrAlreadyCancelled
	}
	if b.Status == domain.BookingCompleted {
		return nil, RefundQuote{}, ErrCompleted
	}

	now := time.Now()
	if !now.Before(b.CheckOutDate) {
		return nil, RefundQuote{}, ErrStayEnded
	}

	quote := ComputeRefund(now, b.CheckInDate, b.IsPaid, b.TotalPrice)

	if err := s.bookings.Cancel(ctx, bookingID, userID, now, reason, quote.Amount, quote.Percentage); err != nil {
		return nil, RefundQuote{}, err
	}

	metrics.IncBookingCancelled()

	if s.notifs != nil {
		if hotel, err := s.hotels.GetByID(ctx, b.HotelID); err == nil {
			_ = s.notifs.NotifyBookingCancelled(ctx, hotel.OwnerID, b, reason)
		}
	}

	updated, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		// The cancellation is already persisted; apply it to the loaded copy
		// rather than reporting a failure for a write that went through.
		b.Status = domain.BookingCancelled
		b.CancelledAt = &now
		b.CancelledBy = &userID
		b.CancellationReason = reason
		b.RefundAmount = quote.Amount
		b.RefundPercentage = quote.Percentage
		return b, quote, nil
	}
	return updated, quote, nil
}

// MarkPaid records a payment confirmation (webhook or pay-at-hotel choice)
// and promotes the booking to confirmed.
func (s *Service) MarkPaid(ctx context.Context, bookingID, userID int64, method string) (*domain.Booking, error) {
	b, err := s.getOwned(ctx, bookingID, userID)
	if err != nil {
		return nil, err
	}
	if b.Status.IsTerminal() {
		return nil, ErrTerminalState
	}

	if method == "" {
		method = domain.PaymentPayAtHotel
	}
	if err := s.bookings.MarkPaid(ctx, bookingID, method, domain.BookingConfirmed); err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, bookingID)
}

// DeleteBooking removes a booking record. Only the owning user may delete,
// and only once the booking reached a terminal state.
func (s *Service) DeleteBooking(ctx context.Context, bookingID, userID int64) error {
	b, err := s.getOwned(ctx, bookingID, userID)
	if err != nil {
		return err
	}
	if !b.Status.IsTerminal() {
		return ErrStillActive
	}

	return s.bookings.Delete(ctx, bookingID)
}
