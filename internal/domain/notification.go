package domain

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID            uuid.UUID `json:"id"`
	UserID        int64     `json:"user_id"`
	Email         string    `json:"-"`
	DestinationID int       `json:"destination_id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Icon          string    `json:"icon"`
	CreatedAt     time.Time `json:"created_at"`
}
