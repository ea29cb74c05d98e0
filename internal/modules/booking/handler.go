package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the endpoints that do not require a session.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/check-availability", h.CheckAvailability)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/book", h.CreateBooking)
	rg.GET("/bookings/user", h.GetUserBookings)
	rg.POST("/bookings/:id/cancel", h.CancelBooking)
	rg.POST("/bookings/:id/pay", h.Pay)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var req CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkIn, err1 := parseDate(req.CheckInDate)
	checkOut, err2 := parseDate(req.CheckOutDate)
	if err1 != nil || err2 != nil {
		response.Fail(c, "Invalid date format")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), req.Room, checkIn, checkOut)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Fail(c, "Check-in date must be before check-out date")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to check availability")
		return
	}

	response.OK(c, gin.H{"isAvailable": available})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkIn, err1 := parseDate(req.CheckInDate)
	checkOut, err2 := parseDate(req.CheckOutDate)
	if err1 != nil || err2 != nil {
		response.Fail(c, "Invalid date format")
		return
	}

	userID := c.GetInt64("user_id")
	b, err := h.service.CreateBooking(c.Request.Context(), userID, req.Room, checkIn, checkOut, req.Guests)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Fail(c, "Invalid booking date range")
		case errors.Is(err, ErrRoomUnavailable):
			response.Fail(c, "Room is not available for the selected dates")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Booking created successfully",
		"booking": b,
	})
}

func (h *Handler) GetUserBookings(c *gin.Context) {
	userID := c.GetInt64("user_id")

	bookings, err := h.service.GetUserBookings(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	response.OK(c, gin.H{"bookings": bookings})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "Invalid booking ID")
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	_, quote, err := h.service.CancelBooking(c.Request.Context(), bookingID, userID, req.CancellationReason)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Fail(c, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Fail(c, "You can only cancel your own bookings")
		case errors.Is(err, ErrAlreadyCancelled):
			response.Fail(c, "Booking is already cancelled")
		case errors.Is(err, ErrCompleted):
			response.Fail(c, "Completed bookings cannot be cancelled")
		case errors.Is(err, ErrStayEnded):
			response.Fail(c, "Cannot cancel after the stay has ended")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to cancel booking")
		}
		return
	}

	response.OK(c, gin.H{
		"message":    "Booking cancelled successfully",
		"refundInfo": quote,
	})
}

func (h *Handler) Pay(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "Invalid booking ID")
		return
	}

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	b, err := h.service.MarkPaid(c.Request.Context(), bookingID, userID, req.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Fail(c, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Fail(c, "You can only pay for your own bookings")
		case errors.Is(err, ErrTerminalState):
			response.Fail(c, "Booking can no longer be paid")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to record payment")
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Payment recorded",
		"booking": b,
	})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "Invalid booking ID")
		return
	}

	userID := c.GetInt64("user_id")
	if err := h.service.DeleteBooking(c.Request.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Fail(c, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Fail(c, "You can only delete your own bookings")
		case errors.Is(err, ErrStillActive):
			response.Fail(c, "Only cancelled or completed bookings can be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to delete booking")
		}
		return
	}

	response.OK(c, gin.H{"message": "Booking deleted"})
}
