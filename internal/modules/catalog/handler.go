package catalog

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.ListRooms)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/hotels", h.RegisterHotel)
	rg.POST("/rooms", h.CreateRoom)
	rg.GET("/rooms/owner", h.ListOwnerRooms)
	rg.POST("/rooms/:id/toggle-availability", h.ToggleRoomAvailability)
}

func (h *Handler) RegisterHotel(c *gin.Context) {
	var req RegisterHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hotel, err := h.service.RegisterHotel(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrHotelExists) {
			response.Fail(c, "Hotel already registered for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register hotel")
		return
	}

	response.OK(c, gin.H{
		"message": "Hotel registered successfully",
		"hotel":   hotel,
	})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoHotel):
			response.Fail(c, "Register a hotel before adding rooms")
		case errors.Is(err, ErrInvalidRoomType):
			response.Fail(c, "Invalid room type")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create room")
		}
		return
	}

	response.OK(c, gin.H{
		"message": "Room created successfully",
		"room":    room,
	})
}

func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context(), c.Query("city"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}

	response.OK(c, gin.H{"rooms": rooms})
}

func (h *Handler) ListOwnerRooms(c *gin.Context) {
	rooms, err := h.service.ListOwnerRooms(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if errors.Is(err, ErrNoHotel) {
			response.Fail(c, "No hotel registered for this account")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to list rooms")
		return
	}

	response.OK(c, gin.H{"rooms": rooms})
}

func (h *Handler) ToggleRoomAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "Invalid room ID")
		return
	}

	if err := h.service.ToggleRoomAvailability(c.Request.Context(), c.GetInt64("user_id"), roomID); err != nil {
		switch {
		case errors.Is(err, ErrRoomNotFound):
			response.Fail(c, "Room not found")
		case errors.Is(err, ErrForbidden):
			response.Fail(c, "You don't own this room")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to update room")
		}
		return
	}

	response.OK(c, gin.H{"message": "Room availability updated"})
}
