package owner

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"staybook/internal/domain"
	"staybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/owner/bookings", h.ListHotelBookings)
	rg.POST("/owner/bookings/:id/status", h.UpdateBookingStatus)
	rg.GET("/owner/bookings/export", h.ExportBookings)
}

func (h *Handler) ListHotelBookings(c *gin.Context) {
	bookings, err := h.service.ListHotelBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNoHotel) {
			response.Fail(c, "No hotel registered for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to load bookings")
		return
	}

	response.OK(c, gin.H{"bookings": bookings})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "Invalid booking ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.UpdateBookingStatus(c.Request.Context(), c.GetInt64("user_id"), bookingID, domain.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNoHotel):
			response.Fail(c, "No hotel registered for this account")
		case errors.Is(err, ErrNotFound):
			response.Fail(c, "Booking not found")
		case errors.Is(err, ErrForbidden):
			response.Fail(c, "Booking belongs to another hotel")
		case errors.Is(err, ErrInvalidStatusTransition):
			response.Fail(c, "Status cannot be changed")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update status")
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Status updated",
		"booking": b,
	})
}

func (h *Handler) ExportBookings(c *gin.Context) {
	f, err := h.service.ExportBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNoHotel) {
			response.Fail(c, "No hotel registered for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to export bookings")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("bookings_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
