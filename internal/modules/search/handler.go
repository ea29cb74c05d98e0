package search

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/search/rooms", h.SearchRooms)
	rg.GET("/search/suggest-dates", h.SuggestDates)
}

func (h *Handler) SearchRooms(c *gin.Context) {
	destination := c.Query("destination")
	onlyAvailable := c.Query("onlyAvailable") == "true"

	// Guests is part of the search form; rooms carry no capacity so it only
	// flows back to the client for the booking step.
	guests := 1
	if v := c.Query("guests"); v != "" {
		g, err := strconv.Atoi(v)
		if err != nil || g < 1 {
			response.Fail(c, "Invalid guests")
			return
		}
		guests = g
	}

	var checkIn, checkOut time.Time
	var err error
	if v := c.Query("checkIn"); v != "" {
		if checkIn, err = parseDate(v); err != nil {
			response.Fail(c, "Invalid checkIn date")
			return
		}
	}
	if v := c.Query("checkOut"); v != "" {
		if checkOut, err = parseDate(v); err != nil {
			response.Fail(c, "Invalid checkOut date")
			return
		}
	}

	rooms, err := h.service.SearchRooms(c.Request.Context(), destination, checkIn, checkOut, onlyAvailable)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Fail(c, "Check-in date must be before check-out date")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to search rooms")
		return
	}

	response.OK(c, gin.H{
		"rooms":  rooms,
		"guests": guests,
	})
}

func (h *Handler) SuggestDates(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("roomId"), 10, 64)
	if err != nil {
		response.Fail(c, "Invalid roomId")
		return
	}

	checkIn, err1 := parseDate(c.Query("checkIn"))
	checkOut, err2 := parseDate(c.Query("checkOut"))
	if err1 != nil || err2 != nil {
		response.Fail(c, "Invalid date format")
		return
	}

	suggestions, err := h.service.SuggestDates(c.Request.Context(), roomID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Fail(c, "Check-in date must be before check-out date")
		case errors.Is(err, ErrRoomNotFound):
			response.Fail(c, "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to suggest dates")
		}
		return
	}

	response.OK(c, gin.H{
		"suggestions":      suggestions,
		"originalCheckIn":  checkIn,
		"originalCheckOut": checkOut,
	})
}
