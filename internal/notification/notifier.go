package notification

import (
	"context"

	"github.com/rs/zerolog"

	"staybook/internal/domain"
)

// Notifier is the capability boundary for best-effort side effects.
// Implementations must never block the caller's primary write: errors are
// returned for logging only and callers discard them.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, ownerUserID int64, b *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, ownerUserID int64, b *domain.Booking, reason string) error
	SendBookingConfirmation(ctx context.Context, userEmail string, b *domain.Booking) error
}

// LogNotifier writes notification events to the log. Stands in for the
// email/push providers, which are infrastructure integrations outside the
// booking core.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) NotifyBookingCreated(ctx context.Context, ownerUserID int64, b *domain.Booking) error {
	n.log.Info().
		Int64("owner_user_id", ownerUserID).
		Int64("booking_id", b.ID).
		Str("reference", b.Reference).
		Int64("hotel_id", b.HotelID).
		Int64("room_id", b.RoomID).
		Time("check_in", b.CheckInDate).
		Msg("booking created notification")
	return nil
}

func (n *LogNotifier) NotifyBookingCancelled(ctx context.Context, ownerUserID int64, b *domain.Booking, reason string) error {
	n.log.Info().
		Int64("owner_user_id", ownerUserID).
		Int64("booking_id", b.ID).
		Str("reference", b.Reference).
		Str("reason", reason).
		Msg("booking cancelled notification")
	return nil
}

func (n *LogNotifier) SendBookingConfirmation(ctx context.Context, userEmail string, b *domain.Booking) error {
	n.log.Info().
		Str("email", userEmail).
		Int64("booking_id", b.ID).
		Str("reference", b.Reference).
		Float64("total_price", b.TotalPrice).
		Msg("booking confirmation email")
	return nil
}
