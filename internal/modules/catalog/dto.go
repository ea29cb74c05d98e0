package catalog

type RegisterHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	Contact string `json:"contact"`
}

type CreateRoomRequest struct {
	RoomType      string   `json:"roomType" binding:"required"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	Amenities     []string `json:"amenities"`
}
