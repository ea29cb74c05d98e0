package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Name      string    `json:"name" validate:"required"`
	Address   string    `json:"address" validate:"required"`
	City      string    `json:"city" validate:"required"`
	Contact   string    `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
